package post

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bornholm/billet/internal/command/common"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/markdown"
	"github.com/bornholm/billet/internal/setup"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Create or update posts from markdown files with a yaml front matter",
		ArgsUsage: "FILE...",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			files := cCtx.Args().Slice()
			if len(files) == 0 {
				return errors.New("at least one file is expected")
			}

			conf, err := common.GetConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			postManager, err := setup.NewPostManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create post manager")
			}

			fs := afero.NewOsFs()

			for _, f := range files {
				result, err := importFile(ctx, postManager, fs, f)
				if err != nil {
					return errors.Wrapf(err, "could not import file '%s'", f)
				}

				slog.InfoContext(ctx, "post imported", slog.String("file", f), slog.String("slug", string(result.Slug)), slog.String("intent", result.Intent))
			}

			return nil
		},
	}
}

type importResult struct {
	Slug   model.PostSlug
	Intent string
}

func importFile(ctx context.Context, postManager *service.PostManager, fs afero.Fs, path string) (*importResult, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if mime := mimetype.Detect(data); !strings.HasPrefix(mime.String(), "text/") {
		return nil, errors.Errorf("unexpected file type '%s'", mime.String())
	}

	frontMatter, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slug := frontMatter.String("slug")
	if slug == "" {
		slug = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	submission := service.PostSubmission{
		Intent:   service.IntentUpdate,
		Title:    frontMatter.String("title"),
		Slug:     slug,
		Markdown: string(body),
	}

	mode := model.EditPostMode(model.PostSlug(slug))

	if _, err := postManager.GetPost(ctx, model.PostSlug(slug)); err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(err)
		}

		submission.Intent = service.IntentCreate
		mode = model.NewPostMode()
	}

	result, err := postManager.Submit(ctx, mode, submission)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !result.Done() {
		return nil, errors.Errorf("invalid post: %s", formatFieldErrors(*result.FieldErrors))
	}

	return &importResult{
		Slug:   result.Post.Slug(),
		Intent: submission.Intent,
	}, nil
}

func formatFieldErrors(fieldErrs service.FieldErrors) string {
	messages := make([]string, 0, 3)

	for _, m := range []string{fieldErrs.Title, fieldErrs.Slug, fieldErrs.Markdown} {
		if m != "" {
			messages = append(messages, m)
		}
	}

	return strings.Join(messages, ", ")
}
