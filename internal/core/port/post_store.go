package port

import (
	"context"

	"github.com/bornholm/billet/internal/core/model"
)

type PostStore interface {
	// GetPostBySlug returns the post identified by the given slug, or ErrNotFound
	GetPostBySlug(ctx context.Context, slug model.PostSlug) (model.PersistedPost, error)

	// QueryPostHeaders returns the slug and title of every post, oldest first
	QueryPostHeaders(ctx context.Context) ([]model.PostHeader, error)

	// CreatePost creates a new post, or returns ErrAlreadyExists if the slug is taken
	CreatePost(ctx context.Context, post model.Post) (model.PersistedPost, error)

	// UpdatePost replaces the slug, title and markdown of the post currently identified
	// by the given slug. It returns ErrNotFound if no post has this slug.
	UpdatePost(ctx context.Context, slug model.PostSlug, post model.Post) (model.PersistedPost, error)

	// DeletePost deletes the post identified by the given slug, or returns ErrNotFound
	DeletePost(ctx context.Context, slug model.PostSlug) error
}
