package plants

import "context"

type Repository interface {
	Create(ctx context.Context, p Plant) error
	Update(ctx context.Context, p Plant) error
	GetByID(ctx context.Context, id string) (Plant, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Plant, error)
	Delete(ctx context.Context, id string) error
}
