package post

import (
	"github.com/bornholm/billet/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ShowCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     "Show the rendered post published under the given slug",
		ArgsUsage: "SLUG",
		Flags:     flags,
		Before:    common.LoadConfigFile(flags),
		Action: func(cCtx *cli.Context) error {
			slug := cCtx.Args().First()
			if slug == "" {
				return errors.New("a slug is expected")
			}

			client, err := common.GetBilletClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			post, err := client.GetPost(cCtx.Context, slug)
			if err != nil {
				return errors.Wrapf(err, "could not get post '%s'", slug)
			}

			encoder := yaml.NewEncoder(cCtx.App.Writer)
			defer encoder.Close()

			if err := encoder.Encode(post); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
