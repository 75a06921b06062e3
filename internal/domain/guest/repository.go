package guest

import "context"

type Repository interface {
	CreateGuest(ctx context.Context, g *Guest) error
	CreateGuests(ctx context.Context, guests []*Guest) error
	ListGuests(ctx context.Context, weddingID string) ([]Guest, error)
	GetGuest(ctx context.Context, weddingID, id string) (*Guest, error)
	UpdateGuest(ctx context.Context, g *Guest) error
	DeleteGuest(ctx context.Context, weddingID, id string) error
}
