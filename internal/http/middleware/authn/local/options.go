package local

import (
	"net/http"

	"github.com/bornholm/billet/internal/http/middleware/authn/local/component"
)

type Provider = component.Provider

type Options struct {
	SessionName     string
	Providers       []Provider
	LoginMiddleware func(http.Handler) http.Handler
	LogoutRedirect  string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName:     "billet_auth",
		Providers:       make([]Provider, 0),
		LoginMiddleware: func(h http.Handler) http.Handler { return h },
		LogoutRedirect:  "/posts/",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

// WithProviders lists external identity providers on the login page.
func WithProviders(providers ...Provider) OptionFunc {
	return func(opts *Options) {
		opts.Providers = providers
	}
}

// WithLoginMiddleware wraps the credentials check, i.e. to rate limit it.
func WithLoginMiddleware(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.LoginMiddleware = middleware
	}
}

func WithLogoutRedirect(path string) OptionFunc {
	return func(opts *Options) {
		opts.LogoutRedirect = path
	}
}
