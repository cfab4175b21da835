package component

import (
	"context"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/model"
	httpCtx "github.com/bornholm/billet/internal/http/context"
	"github.com/bornholm/billet/internal/http/url"
)

var (
	WithPath   = url.WithPath
	WithValues = url.WithValues
)

// BaseURL returns the mutated public base url of the application.
func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func PostURL(ctx context.Context, slug model.PostSlug) templ.SafeURL {
	return BaseURL(ctx, WithPath("/posts", string(slug)))
}

// AdminPostURL returns the url of the edit form of the given mode,
// "new" or an existing slug.
func AdminPostURL(ctx context.Context, mode model.EditMode) templ.SafeURL {
	return BaseURL(ctx, WithPath("/posts/admin", mode.String()))
}

// LoginURL returns the login page url, redirecting to next once
// authenticated.
func LoginURL(ctx context.Context, next string) templ.SafeURL {
	if next == "" {
		return BaseURL(ctx, WithPath("/auth/login"))
	}

	return BaseURL(ctx, WithPath("/auth/login"), WithValues("next", next))
}
