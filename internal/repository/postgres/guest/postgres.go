package guest

import (
	"context"
	"errors"

	guestdomain "wedding-rsvp-go/internal/domain/guest"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateGuest(ctx context.Context, g *guestdomain.Guest) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *PostgresRepository) CreateGuests(ctx context.Context, guests []*guestdomain.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&guests).Error
}

func (r *PostgresRepository) ListGuests(ctx context.Context, weddingID string) ([]guestdomain.Guest, error) {
	var guests []guestdomain.Guest
	err := r.db.WithContext(ctx).
		Where("wedding_id = ?", weddingID).
		Order("created_at asc").
		Order("id asc").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *PostgresRepository) GetGuest(ctx context.Context, weddingID, id string) (*guestdomain.Guest, error) {
	var g guestdomain.Guest
	err := r.db.WithContext(ctx).
		First(&g, "wedding_id = ? AND id = ?", weddingID, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, guestdomain.ErrGuestNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) UpdateGuest(ctx context.Context, g *guestdomain.Guest) error {
	result := r.db.WithContext(ctx).
		Model(&guestdomain.Guest{}).
		Where("wedding_id = ? AND id = ?", g.WeddingID, g.ID).
		Select("*").
		Omit("id", "wedding_id", "created_at").
		Updates(g)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return guestdomain.ErrGuestNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteGuest(ctx context.Context, weddingID, id string) error {
	result := r.db.WithContext(ctx).
		Delete(&guestdomain.Guest{}, "wedding_id = ? AND id = ?", weddingID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return guestdomain.ErrGuestNotFound
	}
	return nil
}
