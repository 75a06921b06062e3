package wedding

import "context"

type Repository interface {
	CreateWedding(ctx context.Context, w *Wedding) error
	ListWeddings(ctx context.Context) ([]Wedding, error)
	GetWedding(ctx context.Context, id string) (*Wedding, error)
	GetWeddingByCode(ctx context.Context, code string) (*Wedding, error)
	UpdateWedding(ctx context.Context, w *Wedding) error
	ReplaceQuestions(ctx context.Context, weddingID string, questions []Question) error
	DeleteWedding(ctx context.Context, id string) error
	IsCodeTaken(ctx context.Context, code string) (bool, error)
}
