package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/billet/internal/build"
	"github.com/bornholm/billet/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// SetupSentry initializes the error reporting client. The returned function
// flushes buffered events and must be called before exiting.
func SetupSentry(ctx context.Context, conf *config.Config) (func(), error) {
	if conf.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
		Release:     build.ShortVersion,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize sentry client")
	}

	slog.InfoContext(ctx, "error reporting enabled", slog.String("environment", conf.Sentry.Environment))

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
