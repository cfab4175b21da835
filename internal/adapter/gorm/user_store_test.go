package gorm

import (
	"context"
	"testing"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/pkg/errors"
)

func TestUserStore(t *testing.T) {
	store, err := newTestStore(t)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	users := NewUserStore(store)
	ctx := context.Background()

	if _, err := users.GetUserByEmail(ctx, "admin@example.org"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("GetUserByEmail: expected port.ErrNotFound, got '%+v'", err)
	}

	if err := users.SaveUser(ctx, model.NewUser(model.NewUserID(), "Admin@Example.org", []byte("first"))); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	user, err := users.GetUserByEmail(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "admin@example.org", user.Email(); e != g {
		t.Errorf("user.Email(): expected '%v', got '%v'", e, g)
	}

	firstID := user.ID()

	if err := users.SaveUser(ctx, model.NewUser(model.NewUserID(), "admin@example.org", []byte("second"))); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	user, err = users.GetUserByEmail(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "second", string(user.PasswordHash()); e != g {
		t.Errorf("user.PasswordHash(): expected '%v', got '%v'", e, g)
	}

	if e, g := firstID, user.ID(); e != g {
		t.Errorf("user.ID(): expected '%v', got '%v'", e, g)
	}
}
