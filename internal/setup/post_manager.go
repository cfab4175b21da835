package setup

import (
	"context"

	"github.com/bornholm/billet/internal/config"
	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/markdown"
	"github.com/pkg/errors"
)

var NewPostManagerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.PostManager, error) {
	store, err := getPostStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	renderer := markdown.NewRenderer(
		markdown.WithUnsafe(conf.Markdown.Unsafe),
	)

	return service.NewPostManager(store, renderer), nil
})
