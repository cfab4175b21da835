package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bornholm/billet/internal/adapter/memory"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/markdown"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	store := memory.NewPostStore()

	seeds := []model.Post{
		model.NewReadOnlyPost("first", "First post", "Hello *world*"),
		model.NewReadOnlyPost("second", "Second post", "## Section"),
	}

	for _, p := range seeds {
		if _, err := store.CreatePost(context.Background(), p); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	return NewHandler(service.NewPostManager(store, markdown.NewRenderer()), WithAllowedOrigins("https://example.org"))
}

func TestListPosts(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "application/json", res.Header().Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected '%v', got '%v'", e, g)
	}

	var body ListPostsResponse
	if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := []PostHeader{
		{Slug: "first", Title: "First post"},
		{Slug: "second", Title: "Second post"},
	}

	if e, g := len(expected), len(body.Posts); e != g {
		t.Fatalf("len(body.Posts): expected '%v', got '%v'", e, g)
	}

	for i, e := range expected {
		if g := body.Posts[i]; e != g {
			t.Errorf("body.Posts[%d]: expected '%v', got '%v'", i, spew.Sdump(e), spew.Sdump(g))
		}
	}
}

func TestGetPost(t *testing.T) {
	type testCase struct {
		Slug           string
		ExpectedStatus int
		ExpectedTitle  string
		ExpectedHTML   string
		ExpectedError  string
	}

	testCases := []testCase{
		{
			Slug:           "first",
			ExpectedStatus: http.StatusOK,
			ExpectedTitle:  "First post",
			ExpectedHTML:   "<p>Hello <em>world</em></p>\n",
		},
		{
			Slug:           "second",
			ExpectedStatus: http.StatusOK,
			ExpectedTitle:  "Second post",
			ExpectedHTML:   "<h2 id=\"section\">Section</h2>\n",
		},
		{
			Slug:           "missing",
			ExpectedStatus: http.StatusNotFound,
			ExpectedError:  "not found",
		},
	}

	handler := newTestHandler(t)

	for _, tc := range testCases {
		t.Run(tc.Slug, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts/"+tc.Slug, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.ExpectedError != "" {
				var body ErrorResponse
				if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}

				if e, g := tc.ExpectedError, body.Error; e != g {
					t.Errorf("body.Error: expected '%v', got '%v'", e, g)
				}

				return
			}

			var body GetPostResponse
			if err := json.Unmarshal(res.Body.Bytes(), &body); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedTitle, body.Title; e != g {
				t.Errorf("body.Title: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedHTML, body.HTML; e != g {
				t.Errorf("body.HTML: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Origin", "https://example.org")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if e, g := "https://example.org", res.Header().Get("Access-Control-Allow-Origin"); e != g {
		t.Errorf("Access-Control-Allow-Origin: expected '%v', got '%v'", e, g)
	}

	req = httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Origin", "https://evil.example")
	res = httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	if g := res.Header().Get("Access-Control-Allow-Origin"); g != "" {
		t.Errorf("Access-Control-Allow-Origin: expected no header, got '%v'", g)
	}
}
