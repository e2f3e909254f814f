package repository

import (
	"context"

	"servilink/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int, error)

	// Session methods. The current session is a single persisted
	// pointer to one user; GetSession returns (nil, nil) when nobody
	// is logged in.
	SaveSession(ctx context.Context, userID string) error
	GetSession(ctx context.Context) (*entity.User, error)
	ClearSession(ctx context.Context) error
}
