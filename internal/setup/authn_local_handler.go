package setup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/config"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	"github.com/bornholm/billet/internal/http/middleware/authn/local"
	"github.com/bornholm/billet/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

var getLocalAuthnHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*local.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := NewUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oidcHandler, err := getOIDCAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	oidcProviders := oidcHandler.Providers()

	providers := make([]local.Provider, 0, len(oidcProviders))
	for _, p := range oidcProviders {
		providers = append(providers, local.Provider{
			ID:    p.ID,
			Label: p.Label,
			Icon:  p.Icon,
			URL:   templ.SafeURL(fmt.Sprintf("%s/auth/oidc/providers/%s", conf.HTTP.BaseURL, p.ID)),
		})
	}

	opts := []local.OptionFunc{
		local.WithProviders(providers...),
		// Clears the external provider session too
		local.WithLogoutRedirect("/auth/oidc/logout"),
	}

	if conf.HTTP.RateLimit.Enabled {
		onLimited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			common.HandleError(w, r, common.NewTooManyRequestsError())
		})

		limiter := ratelimit.Middleware(
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithOnLimited(onLimited),
		)

		opts = append(opts, local.WithLoginMiddleware(limiter))
	}

	return local.NewHandler(sessionStore, userStore, opts...), nil
})
