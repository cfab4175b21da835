package setup

import (
	"context"

	gormAdapter "github.com/bornholm/billet/internal/adapter/gorm"
	"github.com/bornholm/billet/internal/config"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/pkg/errors"
)

var NewUserStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	gormStore, err := getGormStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewUserStore(gormStore), nil
})
