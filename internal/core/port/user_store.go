package port

import (
	"context"

	"github.com/bornholm/billet/internal/core/model"
)

type UserStore interface {
	// GetUserByEmail finds a user by its email, or returns ErrNotFound if not found
	GetUserByEmail(ctx context.Context, email string) (model.User, error)

	// SaveUser creates or replaces the user sharing the same email
	SaveUser(ctx context.Context, user model.User) error
}
