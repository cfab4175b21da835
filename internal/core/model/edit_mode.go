package model

import (
	"github.com/pkg/errors"
)

const newPostToken = "new"

var ErrMissingSlug = errors.New("slug is required")

// EditMode tells whether an admin request targets a post to be created
// or an existing post identified by its slug.
type EditMode struct {
	slug PostSlug
}

func (m EditMode) IsNew() bool {
	return m.slug == ""
}

// Slug returns the slug of the edited post. It is empty in creation mode.
func (m EditMode) Slug() PostSlug {
	return m.slug
}

func (m EditMode) String() string {
	if m.IsNew() {
		return newPostToken
	}

	return string(m.slug)
}

func NewPostMode() EditMode {
	return EditMode{}
}

func EditPostMode(slug PostSlug) EditMode {
	return EditMode{slug: slug}
}

// ParseEditMode maps the raw route parameter to an EditMode. The literal
// "new" selects the creation mode, any other value designates an existing post.
func ParseEditMode(raw string) (EditMode, error) {
	switch raw {
	case "":
		return EditMode{}, errors.WithStack(ErrMissingSlug)
	case newPostToken:
		return NewPostMode(), nil
	default:
		return EditPostMode(PostSlug(raw)), nil
	}
}
