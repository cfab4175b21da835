package post

import (
	"github.com/bornholm/billet/internal/command/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ListCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:   "list",
		Usage:  "List the posts published by a billet server",
		Flags:  flags,
		Before: common.LoadConfigFile(flags),
		Action: func(cCtx *cli.Context) error {
			client, err := common.GetBilletClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			posts, err := client.ListPosts(cCtx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			encoder := yaml.NewEncoder(cCtx.App.Writer)
			defer encoder.Close()

			if err := encoder.Encode(posts); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
