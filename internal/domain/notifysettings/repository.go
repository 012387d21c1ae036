package notifysettings

import "context"

type Repository interface {
	Create(ctx context.Context, s Settings) error
	Update(ctx context.Context, s Settings) error
	GetByUser(ctx context.Context, userID string) (Settings, error)
}
