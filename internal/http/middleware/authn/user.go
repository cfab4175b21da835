package authn

import (
	"context"
	"fmt"
)

type User struct {
	Email       string
	Provider    string
	Subject     string
	DisplayName string
}

func (u *User) String() string {
	return fmt.Sprintf("%s/%s", u.Provider, u.Email)
}

type contextKey string

const keyUser contextKey = "user"

// ContextUser returns the authenticated user of the request, if any.
func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(keyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
