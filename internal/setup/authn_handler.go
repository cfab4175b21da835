package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/billet/internal/config"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

type authnHandler struct {
	mux            *http.ServeMux
	authenticators []authn.Authenticator
}

// ServeHTTP implements [http.Handler].
func (h *authnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// Middleware adds the authenticated user, if any, to the request context.
func (h *authnHandler) Middleware() func(http.Handler) http.Handler {
	return authn.OptionalMiddleware(h.authenticators...)
}

func (h *authnHandler) Authenticators() []authn.Authenticator {
	return h.authenticators
}

var getAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*authnHandler, error) {
	localHandler, err := getLocalAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure local authn handler")
	}

	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure oidc authn handler")
	}

	mux := http.NewServeMux()

	mux.Handle("/oidc/", http.StripPrefix("/oidc", oidcHandler))
	mux.Handle("/", localHandler)

	return &authnHandler{
		mux:            mux,
		authenticators: []authn.Authenticator{localHandler, oidcHandler},
	}, nil
})

var _ http.Handler = &authnHandler{}
