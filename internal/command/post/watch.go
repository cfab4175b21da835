package post

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/bornholm/billet/internal/command/common"
	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/filesystem"
	"github.com/bornholm/billet/internal/setup"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/redmatter/go-globre/v2"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

const (
	paramFilter    = "filter"
	paramInterval  = "interval"
	paramRecursive = "recursive"
)

func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Watch a directory and import markdown files when they are created or modified",
		ArgsUsage: "DIR",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    paramFilter,
				Usage:   "glob pattern of the watched files, relative to the directory",
				EnvVars: []string{"BILLET_CLI_WATCH_FILTER"},
				Value:   "**/*.md",
			},
			&cli.DurationFlag{
				Name:    paramInterval,
				Usage:   "polling interval",
				EnvVars: []string{"BILLET_CLI_WATCH_INTERVAL"},
				Value:   time.Second,
			},
			&cli.BoolFlag{
				Name:    paramRecursive,
				Usage:   "watch sub directories",
				EnvVars: []string{"BILLET_CLI_WATCH_RECURSIVE"},
				Value:   true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			dir := cCtx.Args().First()
			if dir == "" {
				return errors.New("a directory is expected")
			}

			filter, err := compileGlob(cCtx.String(paramFilter))
			if err != nil {
				return errors.Wrap(err, "could not parse filter")
			}

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			ctx := slogx.WithAttrs(cCtx.Context, slog.String("directory", dir))

			postManager, err := setup.NewPostManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create post manager")
			}

			fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

			err = filesystem.Watch(
				ctx, fs, newFileImporter(postManager, fs),
				filesystem.WithFilter(filter),
				filesystem.WithInterval(cCtx.Duration(paramInterval)),
				filesystem.WithRecursive(cCtx.Bool(paramRecursive)),
			)
			if err != nil && !errors.Is(err, context.Canceled) {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func compileGlob(pattern string) (*regexp.Regexp, error) {
	expr := globre.RegexFromGlob(
		pattern,
		globre.ExtendedSyntaxEnabled(true),
		globre.GlobStarEnabled(true),
		globre.WithDelimiter('/'),
	)

	filter, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return filter, nil
}

func newFileImporter(postManager *service.PostManager, fs afero.Fs) filesystem.WatchHandlerFunc {
	return func(ctx context.Context, event filesystem.WatchEvent) error {
		ctx = slogx.WithAttrs(ctx, slog.String("file", event.Path), slog.String("op", event.Op.String()))

		result, err := importFile(ctx, postManager, fs, event.Path)
		if err != nil {
			return errors.Wrapf(err, "could not import file '%s'", event.Path)
		}

		slog.InfoContext(ctx, "post imported", slog.String("slug", string(result.Slug)), slog.String("intent", result.Intent))

		return nil
	}
}
