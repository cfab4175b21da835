package common

import (
	"net/url"

	"github.com/bornholm/billet/internal/build"
	"github.com/bornholm/billet/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer = "server"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"BILLET_SERVER"},
		Usage:   "Billet server base url",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
	}, flags...)
}

// LoadConfigFile fills the flags from the yaml file given with --config, if any.
func LoadConfigFile(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config"))
}

func GetBilletClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse server url '%s'", rawServerURL)
	}

	return client.New(
		client.WithBaseURL(serverURL),
		client.WithUserAgent(client.DefaultUserAgent+"/"+build.ShortVersion),
	), nil
}
