package post

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "post",
		Usage: "Manage posts",
		Subcommands: []*cli.Command{
			ImportCommand(),
			ListCommand(),
			ShowCommand(),
			WatchCommand(),
		},
	}
}
