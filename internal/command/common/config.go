package common

import (
	"github.com/bornholm/billet/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// GetConfig parses the server configuration from the environment, to let
// commands work on the same storage as the server.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	return conf, nil
}
