package model

import (
	"strings"
	"time"

	"github.com/rs/xid"
)

type PostID string

func NewPostID() PostID {
	return PostID(xid.New().String())
}

// PostSlug is the URL-safe key identifying a post. It is unique across
// posts but may be replaced when a post is edited.
type PostSlug string

// reservedSlugs collide with the admin routes
var reservedSlugs = []PostSlug{newPostToken, "admin", ".", ".."}

// IsRoutableSlug reports whether a post stored with the given slug can be
// reached from its public and admin urls.
func IsRoutableSlug(slug PostSlug) bool {
	for _, reserved := range reservedSlugs {
		if slug == reserved {
			return false
		}
	}

	return !strings.Contains(string(slug), "/")
}

type Post interface {
	Slug() PostSlug
	Title() string
	Markdown() string
}

type PersistedPost interface {
	Post
	Entity[PostID]
}

type PostHeader struct {
	Slug      PostSlug
	Title     string
	CreatedAt time.Time
}

type ReadOnlyPost struct {
	slug     PostSlug
	title    string
	markdown string
}

// Markdown implements Post.
func (p *ReadOnlyPost) Markdown() string {
	return p.markdown
}

// Slug implements Post.
func (p *ReadOnlyPost) Slug() PostSlug {
	return p.slug
}

// Title implements Post.
func (p *ReadOnlyPost) Title() string {
	return p.title
}

func NewReadOnlyPost(slug PostSlug, title string, markdown string) *ReadOnlyPost {
	return &ReadOnlyPost{
		slug:     slug,
		title:    title,
		markdown: markdown,
	}
}

var _ Post = &ReadOnlyPost{}
