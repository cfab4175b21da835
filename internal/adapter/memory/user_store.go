package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/pkg/errors"
)

type UserStore struct {
	users map[string]*model.BaseUser
	mutex sync.RWMutex
}

// GetUserByEmail implements port.UserStore.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, exists := s.users[normalizeEmail(email)]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

// SaveUser implements port.UserStore.
func (s *UserStore) SaveUser(ctx context.Context, user model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	email := normalizeEmail(user.Email())

	id := user.ID()
	if existing, exists := s.users[email]; exists {
		id = existing.ID()
	}

	s.users[email] = model.NewUser(id, email, user.PasswordHash())

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*model.BaseUser),
	}
}

var _ port.UserStore = &UserStore{}
