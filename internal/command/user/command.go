package user

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage local accounts",
		Subcommands: []*cli.Command{
			CreateCommand(),
		},
	}
}
