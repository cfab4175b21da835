package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/billet/internal/command/common"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/crypto"
	"github.com/bornholm/billet/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	flagEmail    = "email"
	flagPassword = "password"
)

func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a local account, or reset the password of an existing one",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagEmail,
				Usage:    "Email of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagPassword,
				Usage:   "Password of the account, a random one is generated and printed when empty",
				EnvVars: []string{"BILLET_USER_PASSWORD"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			userStore, err := setup.NewUserStoreFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create user store")
			}

			email := cCtx.String(flagEmail)

			password := cCtx.String(flagPassword)
			if password == "" {
				password, err = crypto.RandomPassword(18)
				if err != nil {
					return errors.Wrap(err, "could not generate password")
				}

				fmt.Fprintf(cCtx.App.Writer, "password: %s\n", password)
			}

			if err := saveUser(ctx, userStore, email, password, bcrypt.DefaultCost); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "user saved", slog.String("email", email))

			return nil
		},
	}
}

func saveUser(ctx context.Context, store port.UserStore, email string, password string, cost int) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email must not be empty")
	}

	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return errors.Wrap(err, "could not hash password")
	}

	user := model.NewUser(model.NewUserID(), email, hash)

	if err := store.SaveUser(ctx, user); err != nil {
		return errors.Wrapf(err, "could not save user '%s'", email)
	}

	return nil
}
