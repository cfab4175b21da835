package gorm

import (
	"time"

	"github.com/bornholm/billet/internal/core/model"
)

type Post struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Slug     string `gorm:"unique;not null"`
	Title    string
	Markdown string
}

type wrappedPost struct {
	p *Post
}

// CreatedAt implements model.PersistedPost.
func (w *wrappedPost) CreatedAt() time.Time {
	return w.p.CreatedAt
}

// ID implements model.PersistedPost.
func (w *wrappedPost) ID() model.PostID {
	return model.PostID(w.p.ID)
}

// Markdown implements model.PersistedPost.
func (w *wrappedPost) Markdown() string {
	return w.p.Markdown
}

// Slug implements model.PersistedPost.
func (w *wrappedPost) Slug() model.PostSlug {
	return model.PostSlug(w.p.Slug)
}

// Title implements model.PersistedPost.
func (w *wrappedPost) Title() string {
	return w.p.Title
}

// UpdatedAt implements model.PersistedPost.
func (w *wrappedPost) UpdatedAt() time.Time {
	return w.p.UpdatedAt
}

var _ model.PersistedPost = &wrappedPost{}

func fromPost(p model.Post) *Post {
	return &Post{
		Slug:     string(p.Slug()),
		Title:    p.Title(),
		Markdown: p.Markdown(),
	}
}
