package wedding

import (
	"context"
	"errors"

	guestdomain "wedding-rsvp-go/internal/domain/guest"
	weddingdomain "wedding-rsvp-go/internal/domain/wedding"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateWedding(ctx context.Context, w *weddingdomain.Wedding) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *PostgresRepository) ListWeddings(ctx context.Context) ([]weddingdomain.Wedding, error) {
	var weddings []weddingdomain.Wedding
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at desc").
		Find(&weddings).Error
	if err != nil {
		return nil, err
	}
	return weddings, nil
}

func (r *PostgresRepository) GetWedding(ctx context.Context, id string) (*weddingdomain.Wedding, error) {
	var w weddingdomain.Wedding
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weddingdomain.ErrWeddingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) GetWeddingByCode(ctx context.Context, code string) (*weddingdomain.Wedding, error) {
	var w weddingdomain.Wedding
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		First(&w, "rsvp_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, weddingdomain.ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *PostgresRepository) UpdateWedding(ctx context.Context, w *weddingdomain.Wedding) error {
	result := r.db.WithContext(ctx).
		Model(&weddingdomain.Wedding{}).
		Where("id = ?", w.ID).
		Select("*").
		Omit("Questions", "id", "created_at").
		Updates(w)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return weddingdomain.ErrWeddingNotFound
	}
	return nil
}

func (r *PostgresRepository) ReplaceQuestions(ctx context.Context, weddingID string, questions []weddingdomain.Question) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wedding_id = ?", weddingID).Delete(&weddingdomain.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
}

func (r *PostgresRepository) DeleteWedding(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wedding_id = ?", id).Delete(&weddingdomain.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("wedding_id = ?", id).Delete(&guestdomain.Guest{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&weddingdomain.Wedding{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return weddingdomain.ErrWeddingNotFound
		}
		return nil
	})
}

func (r *PostgresRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&weddingdomain.Wedding{}).
		Where("rsvp_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
