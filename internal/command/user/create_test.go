package user

import (
	"context"
	"testing"

	"github.com/bornholm/billet/internal/adapter/memory"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func TestSaveUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	if err := saveUser(ctx, store, " admin@example.org ", "first", bcrypt.MinCost); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	first, err := store.GetUserByEmail(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := saveUser(ctx, store, "admin@example.org", "second", bcrypt.MinCost); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.GetUserByEmail(ctx, "admin@example.org")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := first.ID(), second.ID(); e != g {
		t.Errorf("second.ID(): expected '%v', got '%v'", e, g)
	}

	if err := bcrypt.CompareHashAndPassword(second.PasswordHash(), []byte("second")); err != nil {
		t.Errorf("expected password to be updated: %+v", err)
	}

	if err := saveUser(ctx, store, "", "secret", bcrypt.MinCost); err == nil {
		t.Errorf("expected an error for an empty email")
	}

	if err := saveUser(ctx, store, "other@example.org", "", bcrypt.MinCost); err == nil {
		t.Errorf("expected an error for an empty password")
	}
}
