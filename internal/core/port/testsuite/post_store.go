package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// TestPostStore runs the behaviors every port.PostStore implementation is expected to honor.
func TestPostStore(t *testing.T, factory func(t *testing.T) (port.PostStore, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.PostStore) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndGet",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				created, err := store.CreatePost(ctx, model.NewReadOnlyPost("hello-world", "Hello world", "# Hello"))
				if err != nil {
					return errors.WithStack(err)
				}

				if created.ID() == "" {
					t.Errorf("created.ID(): expected non empty id")
				}

				if created.CreatedAt().IsZero() {
					t.Errorf("created.CreatedAt(): expected non zero time")
				}

				post, err := store.GetPostBySlug(ctx, "hello-world")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Hello world", post.Title(); e != g {
					t.Errorf("post.Title(): expected '%v', got '%v'", e, g)
				}

				if e, g := "# Hello", post.Markdown(); e != g {
					t.Errorf("post.Markdown(): expected '%v', got '%v'", e, g)
				}

				if e, g := created.ID(), post.ID(); e != g {
					t.Errorf("post.ID(): expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "GetMissing",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				_, err := store.GetPostBySlug(ctx, "missing")
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
				}

				return nil
			},
		},
		{
			Name: "CreateDuplicateSlug",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				if _, err := store.CreatePost(ctx, model.NewReadOnlyPost("dup", "First", "first")); err != nil {
					return errors.WithStack(err)
				}

				_, err := store.CreatePost(ctx, model.NewReadOnlyPost("dup", "Second", "second"))
				if !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrAlreadyExists, err)
				}

				post, err := store.GetPostBySlug(ctx, "dup")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "First", post.Title(); e != g {
					t.Errorf("post.Title(): expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "QueryPostHeadersOrder",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				slugs := []model.PostSlug{"first", "second", "third"}
				for _, s := range slugs {
					if _, err := store.CreatePost(ctx, model.NewReadOnlyPost(s, "Title "+string(s), "content")); err != nil {
						return errors.WithStack(err)
					}
				}

				headers, err := store.QueryPostHeaders(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("headers: %s", spew.Sdump(headers))

				if e, g := len(slugs), len(headers); e != g {
					t.Fatalf("len(headers): expected '%v', got '%v'", e, g)
				}

				for i, s := range slugs {
					if e, g := s, headers[i].Slug; e != g {
						t.Errorf("headers[%d].Slug: expected '%v', got '%v'", i, e, g)
					}

					if e, g := "Title "+string(s), headers[i].Title; e != g {
						t.Errorf("headers[%d].Title: expected '%v', got '%v'", i, e, g)
					}

					if headers[i].CreatedAt.IsZero() {
						t.Errorf("headers[%d].CreatedAt: expected a creation time", i)
					}
				}

				return nil
			},
		},
		{
			Name: "UpdateChangesSlug",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				created, err := store.CreatePost(ctx, model.NewReadOnlyPost("foo", "Foo", "foo"))
				if err != nil {
					return errors.WithStack(err)
				}

				updated, err := store.UpdatePost(ctx, "foo", model.NewReadOnlyPost("bar", "Bar", "bar"))
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := created.ID(), updated.ID(); e != g {
					t.Errorf("updated.ID(): expected '%v', got '%v'", e, g)
				}

				if _, err := store.GetPostBySlug(ctx, "foo"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
				}

				post, err := store.GetPostBySlug(ctx, "bar")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Bar", post.Title(); e != g {
					t.Errorf("post.Title(): expected '%v', got '%v'", e, g)
				}

				if e, g := "bar", post.Markdown(); e != g {
					t.Errorf("post.Markdown(): expected '%v', got '%v'", e, g)
				}

				return nil
			},
		},
		{
			Name: "UpdateMissing",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				_, err := store.UpdatePost(ctx, "missing", model.NewReadOnlyPost("missing", "Missing", "missing"))
				if !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
				}

				return nil
			},
		},
		{
			Name: "UpdateToTakenSlug",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				if _, err := store.CreatePost(ctx, model.NewReadOnlyPost("a", "A", "a")); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.CreatePost(ctx, model.NewReadOnlyPost("b", "B", "b")); err != nil {
					return errors.WithStack(err)
				}

				_, err := store.UpdatePost(ctx, "a", model.NewReadOnlyPost("b", "A", "a"))
				if !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrAlreadyExists, err)
				}

				return nil
			},
		},
		{
			Name: "Delete",
			Run: func(t *testing.T, ctx context.Context, store port.PostStore) error {
				if _, err := store.CreatePost(ctx, model.NewReadOnlyPost("doomed", "Doomed", "bye")); err != nil {
					return errors.WithStack(err)
				}

				if err := store.DeletePost(ctx, "doomed"); err != nil {
					return errors.WithStack(err)
				}

				if _, err := store.GetPostBySlug(ctx, "doomed"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
				}

				if err := store.DeletePost(ctx, "doomed"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("err: expected '%v', got '%v'", port.ErrNotFound, err)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()

			store, err := factory(t)
			if err != nil {
				t.Fatalf("could not create store: %+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("could not run test: %+v", errors.WithStack(err))
			}
		})
	}
}
