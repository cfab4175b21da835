package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/pkg/errors"
)

type post struct {
	id        model.PostID
	slug      model.PostSlug
	title     string
	markdown  string
	createdAt time.Time
	updatedAt time.Time
}

// CreatedAt implements model.PersistedPost.
func (p *post) CreatedAt() time.Time {
	return p.createdAt
}

// ID implements model.PersistedPost.
func (p *post) ID() model.PostID {
	return p.id
}

// Markdown implements model.PersistedPost.
func (p *post) Markdown() string {
	return p.markdown
}

// Slug implements model.PersistedPost.
func (p *post) Slug() model.PostSlug {
	return p.slug
}

// Title implements model.PersistedPost.
func (p *post) Title() string {
	return p.title
}

// UpdatedAt implements model.PersistedPost.
func (p *post) UpdatedAt() time.Time {
	return p.updatedAt
}

var _ model.PersistedPost = &post{}

// PostStore keeps posts in process memory. Its content is lost on restart.
type PostStore struct {
	mutex sync.RWMutex
	posts []*post
}

// CreatePost implements port.PostStore.
func (s *PostStore) CreatePost(ctx context.Context, p model.Post) (model.PersistedPost, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.indexOf(p.Slug()) != -1 {
		return nil, errors.WithStack(port.ErrAlreadyExists)
	}

	now := time.Now()

	created := &post{
		id:        model.NewPostID(),
		slug:      p.Slug(),
		title:     p.Title(),
		markdown:  p.Markdown(),
		createdAt: now,
		updatedAt: now,
	}

	s.posts = append(s.posts, created)

	return clone(created), nil
}

// DeletePost implements port.PostStore.
func (s *PostStore) DeletePost(ctx context.Context, slug model.PostSlug) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(slug)
	if idx == -1 {
		return errors.WithStack(port.ErrNotFound)
	}

	s.posts = slices.Delete(s.posts, idx, idx+1)

	return nil
}

// GetPostBySlug implements port.PostStore.
func (s *PostStore) GetPostBySlug(ctx context.Context, slug model.PostSlug) (model.PersistedPost, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.indexOf(slug)
	if idx == -1 {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return clone(s.posts[idx]), nil
}

// QueryPostHeaders implements port.PostStore.
func (s *PostStore) QueryPostHeaders(ctx context.Context) ([]model.PostHeader, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	headers := make([]model.PostHeader, 0, len(s.posts))
	for _, p := range s.posts {
		headers = append(headers, model.PostHeader{
			Slug:      p.slug,
			Title:     p.title,
			CreatedAt: p.createdAt,
		})
	}

	return headers, nil
}

// UpdatePost implements port.PostStore.
func (s *PostStore) UpdatePost(ctx context.Context, slug model.PostSlug, p model.Post) (model.PersistedPost, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.indexOf(slug)
	if idx == -1 {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	if p.Slug() != slug && s.indexOf(p.Slug()) != -1 {
		return nil, errors.WithStack(port.ErrAlreadyExists)
	}

	existing := s.posts[idx]
	existing.slug = p.Slug()
	existing.title = p.Title()
	existing.markdown = p.Markdown()
	existing.updatedAt = time.Now()

	return clone(existing), nil
}

func (s *PostStore) indexOf(slug model.PostSlug) int {
	return slices.IndexFunc(s.posts, func(p *post) bool {
		return p.slug == slug
	})
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts: make([]*post, 0),
	}
}

var _ port.PostStore = &PostStore{}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}
