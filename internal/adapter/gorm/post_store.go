package gorm

import (
	"context"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostStore struct {
	*Store
}

// CreatePost implements port.PostStore.
func (s *PostStore) CreatePost(ctx context.Context, post model.Post) (model.PersistedPost, error) {
	gormPost := fromPost(post)
	gormPost.ID = string(model.NewPostID())

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(gormPost).Error; err != nil {
			if isUniqueConstraintError(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPost{gormPost}, nil
}

// DeletePost implements port.PostStore.
func (s *PostStore) DeletePost(ctx context.Context, slug model.PostSlug) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Post{}, "slug = ?", string(slug))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetPostBySlug implements port.PostStore.
func (s *PostStore) GetPostBySlug(ctx context.Context, slug model.PostSlug) (model.PersistedPost, error) {
	var post Post

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&post, "slug = ?", string(slug)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPost{&post}, nil
}

// QueryPostHeaders implements port.PostStore.
func (s *PostStore) QueryPostHeaders(ctx context.Context) ([]model.PostHeader, error) {
	var posts []*Post

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&Post{}).
			Select("slug", "title", "created_at").
			Order("created_at ASC").
			Order("id ASC").
			Find(&posts).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	headers := make([]model.PostHeader, 0, len(posts))
	for _, p := range posts {
		headers = append(headers, model.PostHeader{
			Slug:      model.PostSlug(p.Slug),
			Title:     p.Title,
			CreatedAt: p.CreatedAt,
		})
	}

	return headers, nil
}

// UpdatePost implements port.PostStore.
func (s *PostStore) UpdatePost(ctx context.Context, slug model.PostSlug, post model.Post) (model.PersistedPost, error) {
	var existing Post

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&existing, "slug = ?", string(slug)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}

			return errors.WithStack(err)
		}

		existing.Slug = string(post.Slug())
		existing.Title = post.Title()
		existing.Markdown = post.Markdown()

		if err := db.Save(&existing).Error; err != nil {
			if isUniqueConstraintError(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedPost{&existing}, nil
}

func NewPostStore(store *Store) *PostStore {
	return &PostStore{store}
}

var _ port.PostStore = &PostStore{}
