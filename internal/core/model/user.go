package model

import (
	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

// User is a local account able to sign in with a password.
type User interface {
	WithID[UserID]

	Email() string
	PasswordHash() []byte
}

type BaseUser struct {
	id           UserID
	email        string
	passwordHash []byte
}

// ID implements User.
func (u *BaseUser) ID() UserID {
	return u.id
}

// Email implements User.
func (u *BaseUser) Email() string {
	return u.email
}

// PasswordHash implements User.
func (u *BaseUser) PasswordHash() []byte {
	return u.passwordHash
}

var _ User = &BaseUser{}

func NewUser(id UserID, email string, passwordHash []byte) *BaseUser {
	return &BaseUser{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
	}
}
