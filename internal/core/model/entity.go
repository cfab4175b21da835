package model

import "time"

type WithID[T ~string] interface {
	ID() T
}

// Entity is a model once saved by a store. Its timestamps are managed by
// the store and are never set by callers.
type Entity[T ~string] interface {
	WithID[T]

	CreatedAt() time.Time
	UpdatedAt() time.Time
}
