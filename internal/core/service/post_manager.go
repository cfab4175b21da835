package service

import (
	"context"
	"html/template"
	"log/slog"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type Renderer interface {
	Render(markdown string) (template.HTML, error)
}

type RenderedPost struct {
	Title string
	HTML  template.HTML
	// Lang is empty when the language could not be detected
	Lang string
}

type SubmitResult struct {
	// FieldErrors is set when the submission was rejected.
	// Nothing has been persisted in that case.
	FieldErrors *FieldErrors
	Post        model.PersistedPost
}

func (r *SubmitResult) Done() bool {
	return r.FieldErrors == nil
}

type PostManager struct {
	store    port.PostStore
	renderer Renderer
}

func (m *PostManager) GetRenderedPost(ctx context.Context, slug model.PostSlug) (*RenderedPost, error) {
	post, err := m.store.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	html, err := m.renderer.Render(post.Markdown())
	if err != nil {
		return nil, errors.Wrapf(err, "could not render post '%s'", slug)
	}

	metrics.PostReads.Inc()

	return &RenderedPost{
		Title: post.Title(),
		HTML:  html,
		Lang:  detectLang(post.Title() + "\n" + post.Markdown()),
	}, nil
}

func (m *PostManager) ListPostHeaders(ctx context.Context) ([]model.PostHeader, error) {
	headers, err := m.store.QueryPostHeaders(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return headers, nil
}

func (m *PostManager) GetPost(ctx context.Context, slug model.PostSlug) (model.PersistedPost, error) {
	post, err := m.store.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return post, nil
}

// Submit applies a submitted edit form according to the given mode.
func (m *PostManager) Submit(ctx context.Context, mode model.EditMode, submission PostSubmission) (*SubmitResult, error) {
	ctx = slogx.WithAttrs(ctx, slog.String("mode", mode.String()), slog.String("intent", submission.Intent))

	if submission.IsDelete() {
		if mode.IsNew() {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		if err := m.store.DeletePost(ctx, mode.Slug()); err != nil {
			return nil, errors.WithStack(err)
		}

		metrics.PostWrites.WithLabelValues(metrics.OperationDelete).Inc()

		slog.InfoContext(ctx, "post deleted", slog.String("slug", string(mode.Slug())))

		return &SubmitResult{}, nil
	}

	if err := submission.Validate(); err != nil {
		fieldErrs, ok := fieldErrorsFrom(err)
		if !ok {
			return nil, errors.WithStack(err)
		}

		metrics.PostValidationFailures.Inc()

		slog.DebugContext(ctx, "post submission rejected", slog.Any("fieldErrors", fieldErrs))

		return &SubmitResult{FieldErrors: &fieldErrs}, nil
	}

	var (
		post      model.PersistedPost
		err       error
		operation string
	)

	if mode.IsNew() {
		operation = metrics.OperationCreate
		post, err = m.store.CreatePost(ctx, submission.Post())
	} else {
		operation = metrics.OperationUpdate
		post, err = m.store.UpdatePost(ctx, mode.Slug(), submission.Post())
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.PostWrites.WithLabelValues(operation).Inc()

	slog.InfoContext(ctx, "post saved", slog.String("operation", operation), slog.String("slug", string(post.Slug())))

	return &SubmitResult{Post: post}, nil
}

func NewPostManager(store port.PostStore, renderer Renderer) *PostManager {
	return &PostManager{
		store:    store,
		renderer: renderer,
	}
}
