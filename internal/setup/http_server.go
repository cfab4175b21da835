package setup

import (
	"context"

	"github.com/bornholm/billet/internal/config"
	"github.com/bornholm/billet/internal/http"
	"github.com/bornholm/billet/internal/http/handler/api"
	"github.com/bornholm/billet/internal/http/handler/metrics"
	"github.com/bornholm/billet/internal/http/handler/webui"
	"github.com/bornholm/billet/internal/http/middleware/authz"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	if conf.HTTP.Admin.Email == "" {
		return nil, errors.New("BILLET_HTTP_ADMIN_EMAIL must be set")
	}

	authn, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	postManager, err := NewPostManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure post manager from config")
	}

	authnMiddleware := authn.Middleware()

	isAdmin := authz.IsAdmin(conf.HTTP.Admin.Email)
	adminGate := webui.AdminGate(isAdmin, authn.Authenticators()...)

	ui := webui.NewHandler(postManager, adminGate, isAdmin)

	api := api.NewHandler(
		postManager,
		api.WithAllowedOrigins(conf.HTTP.CORS.AllowedOrigins...),
	)

	metrics := metrics.NewHandler(prometheus.DefaultGatherer)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/auth/", authn),
		http.WithMount("/api/v1/", api),
		http.WithMount("/metrics", adminGate(metrics)),
		http.WithMount("/", authnMiddleware(ui)),
	}

	server := http.NewServer(options...)

	return server, nil
}
