package webui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/bornholm/billet/internal/adapter/memory"
	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/core/service"
	httpCtx "github.com/bornholm/billet/internal/http/context"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/billet/internal/http/middleware/authz"
	"github.com/bornholm/billet/internal/markdown"
	"github.com/pkg/errors"
)

const (
	adminEmail   = "admin@example.org"
	headerTestAs = "X-Test-User"
)

type countingPostStore struct {
	port.PostStore
	calls atomic.Int64
}

func (s *countingPostStore) GetPostBySlug(ctx context.Context, slug model.PostSlug) (model.PersistedPost, error) {
	s.calls.Add(1)
	return s.PostStore.GetPostBySlug(ctx, slug)
}

func (s *countingPostStore) QueryPostHeaders(ctx context.Context) ([]model.PostHeader, error) {
	s.calls.Add(1)
	return s.PostStore.QueryPostHeaders(ctx)
}

func (s *countingPostStore) CreatePost(ctx context.Context, post model.Post) (model.PersistedPost, error) {
	s.calls.Add(1)
	return s.PostStore.CreatePost(ctx, post)
}

func (s *countingPostStore) UpdatePost(ctx context.Context, slug model.PostSlug, post model.Post) (model.PersistedPost, error) {
	s.calls.Add(1)
	return s.PostStore.UpdatePost(ctx, slug, post)
}

func (s *countingPostStore) DeletePost(ctx context.Context, slug model.PostSlug) error {
	s.calls.Add(1)
	return s.PostStore.DeletePost(ctx, slug)
}

type headerAuthenticator struct{}

func (a *headerAuthenticator) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	email := r.Header.Get(headerTestAs)
	if email == "" {
		return nil, nil
	}

	return &authn.User{Email: email, Provider: "test", Subject: email}, nil
}

type testEnv struct {
	handler http.Handler
	store   *countingPostStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := &countingPostStore{PostStore: memory.NewPostStore()}
	postManager := service.NewPostManager(store, markdown.NewRenderer())

	isAdmin := authz.IsAdmin(adminEmail)
	authenticator := &headerAuthenticator{}

	handler := authn.OptionalMiddleware(authenticator)(
		NewHandler(postManager, AdminGate(isAdmin, authenticator), isAdmin),
	)

	return &testEnv{handler: withCurrentURL(handler), store: store}
}

func withCurrentURL(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		currentURL := *r.URL
		next.ServeHTTP(w, r.WithContext(httpCtx.SetCurrentURL(r.Context(), &currentURL)))
	})
}

func (e *testEnv) seed(t *testing.T, slug model.PostSlug, title string, markdown string) {
	if _, err := e.store.PostStore.CreatePost(context.Background(), model.NewReadOnlyPost(slug, title, markdown)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}

func (e *testEnv) do(method string, path string, as string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if as != "" {
		req.Header.Set(headerTestAs, as)
	}

	res := httptest.NewRecorder()
	e.handler.ServeHTTP(res, req)

	return res
}

func TestPublicPages(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "hello", "Hello world", "# Greetings\n\nSome *text*.")
	env.seed(t, "second", "Second post", "second")

	res := env.do(http.MethodGet, "/", "", nil)
	if e, g := http.StatusFound, res.Code; e != g {
		t.Errorf("GET /: expected status '%v', got '%v'", e, g)
	}

	if e, g := "/posts/", res.Header().Get("Location"); e != g {
		t.Errorf("GET /: expected location '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodGet, "/posts/", "", nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /posts/: expected status '%v', got '%v'", e, g)
	}

	body := res.Body.String()
	first, second := strings.Index(body, "Hello world"), strings.Index(body, "Second post")
	if first == -1 || second == -1 || first > second {
		t.Errorf("GET /posts/: expected posts in creation order, got '%s'", body)
	}

	if strings.Contains(body, "Manage posts") {
		t.Errorf("GET /posts/: expected no admin link for anonymous visitors")
	}

	res = env.do(http.MethodGet, "/posts/", adminEmail, nil)
	if !strings.Contains(res.Body.String(), "Manage posts") {
		t.Errorf("GET /posts/: expected admin link for the admin")
	}

	res = env.do(http.MethodGet, "/posts/hello", "", nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /posts/hello: expected status '%v', got '%v'", e, g)
	}

	body = res.Body.String()
	if !strings.Contains(body, "<h1>Hello world</h1>") {
		t.Errorf("GET /posts/hello: expected title, got '%s'", body)
	}

	if !strings.Contains(body, `<h1 id="greetings">Greetings</h1>`) || !strings.Contains(body, "<em>text</em>") {
		t.Errorf("GET /posts/hello: expected rendered markdown, got '%s'", body)
	}

	res = env.do(http.MethodGet, "/posts/missing", "", nil)
	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("GET /posts/missing: expected status '%v', got '%v'", e, g)
	}
}

func TestAdminGate(t *testing.T) {
	type testCase struct {
		Name             string
		Method           string
		Path             string
		As               string
		ExpectedStatus   int
		ExpectedLocation string
	}

	form := url.Values{"intent": {"create"}, "title": {"T"}, "slug": {"t"}, "markdown": {"m"}}

	testCases := []testCase{
		{
			Name:             "AnonymousList",
			Method:           http.MethodGet,
			Path:             "/posts/admin/",
			ExpectedStatus:   http.StatusFound,
			ExpectedLocation: "/auth/login?next=%2Fposts%2Fadmin%2F",
		},
		{
			Name:             "AnonymousEdit",
			Method:           http.MethodGet,
			Path:             "/posts/admin/hello",
			ExpectedStatus:   http.StatusFound,
			ExpectedLocation: "/auth/login?next=%2Fposts%2Fadmin%2Fhello",
		},
		{
			Name:             "AnonymousSubmit",
			Method:           http.MethodPost,
			Path:             "/posts/admin/new",
			ExpectedStatus:   http.StatusFound,
			ExpectedLocation: "/auth/login?next=%2Fposts%2Fadmin%2Fnew",
		},
		{
			Name:           "NonAdminSubmit",
			Method:         http.MethodPost,
			Path:           "/posts/admin/new",
			As:             "reader@example.org",
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:           "NonAdminDelete",
			Method:         http.MethodPost,
			Path:           "/posts/admin/hello",
			As:             "reader@example.org",
			ExpectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			env := newTestEnv(t)

			var body url.Values
			if tc.Method == http.MethodPost {
				body = form
			}

			res := env.do(tc.Method, tc.Path, tc.As, body)

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if tc.ExpectedLocation != "" {
				if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
					t.Errorf("location: expected '%v', got '%v'", e, g)
				}
			}

			if e, g := int64(0), env.store.calls.Load(); e != g {
				t.Errorf("store calls: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAdminWorkflow(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(http.MethodGet, "/posts/admin/new", adminEmail, nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /posts/admin/new: expected status '%v', got '%v'", e, g)
	}

	if e, g := int64(0), env.store.calls.Load(); e != g {
		t.Errorf("GET /posts/admin/new: expected '%v' store calls, got '%v'", e, g)
	}

	res = env.do(http.MethodPost, "/posts/admin/new", adminEmail, url.Values{
		"intent":   {"create"},
		"title":    {"Foo"},
		"slug":     {"foo"},
		"markdown": {"foo content"},
	})
	if e, g := http.StatusFound, res.Code; e != g {
		t.Fatalf("create: expected status '%v', got '%v'", e, g)
	}

	if e, g := "/posts/admin/", res.Header().Get("Location"); e != g {
		t.Errorf("create: expected location '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodGet, "/posts/admin/", adminEmail, nil)
	if !strings.Contains(res.Body.String(), "Foo") {
		t.Errorf("GET /posts/admin/: expected created post to be listed")
	}

	res = env.do(http.MethodGet, "/posts/admin/foo", adminEmail, nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /posts/admin/foo: expected status '%v', got '%v'", e, g)
	}

	if !strings.Contains(res.Body.String(), "foo content") {
		t.Errorf("GET /posts/admin/foo: expected form to be filled with the post")
	}

	res = env.do(http.MethodPost, "/posts/admin/foo", adminEmail, url.Values{
		"intent":   {"update"},
		"title":    {"Bar"},
		"slug":     {"bar"},
		"markdown": {"bar content"},
	})
	if e, g := http.StatusFound, res.Code; e != g {
		t.Fatalf("update: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNotFound, env.do(http.MethodGet, "/posts/foo", "", nil).Code; e != g {
		t.Errorf("GET /posts/foo: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusOK, env.do(http.MethodGet, "/posts/bar", "", nil).Code; e != g {
		t.Errorf("GET /posts/bar: expected status '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodPost, "/posts/admin/bar", adminEmail, url.Values{"intent": {"delete"}})
	if e, g := http.StatusFound, res.Code; e != g {
		t.Fatalf("delete: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNotFound, env.do(http.MethodGet, "/posts/bar", "", nil).Code; e != g {
		t.Errorf("GET /posts/bar: expected status '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodPost, "/posts/admin/bar", adminEmail, url.Values{"intent": {"delete"}})
	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("delete missing: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNotFound, env.do(http.MethodGet, "/posts/admin/missing", adminEmail, nil).Code; e != g {
		t.Errorf("GET /posts/admin/missing: expected status '%v', got '%v'", e, g)
	}
}

func TestAdminValidation(t *testing.T) {
	type testCase struct {
		Name       string
		Form       url.Values
		Flagged    []string
		NotFlagged []string
		Preserved  []string
	}

	testCases := []testCase{
		{
			Name:    "AllMissing",
			Form:    url.Values{"intent": {"create"}},
			Flagged: []string{"title is required", "slug is required", "markdown is required"},
		},
		{
			Name:       "MarkdownMissing",
			Form:       url.Values{"intent": {"create"}, "title": {"My title"}, "slug": {"my-slug"}},
			Flagged:    []string{"markdown is required"},
			NotFlagged: []string{"title is required", "slug is required"},
			Preserved:  []string{`value="My title"`, `value="my-slug"`},
		},
		{
			Name:       "TitleMissing",
			Form:       url.Values{"intent": {"create"}, "slug": {"my-slug"}, "markdown": {"some content"}},
			Flagged:    []string{"title is required"},
			NotFlagged: []string{"slug is required", "markdown is required"},
			Preserved:  []string{"some content"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			env := newTestEnv(t)

			res := env.do(http.MethodPost, "/posts/admin/new", adminEmail, tc.Form)
			if e, g := http.StatusOK, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			body := res.Body.String()

			for _, s := range tc.Flagged {
				if !strings.Contains(body, s) {
					t.Errorf("expected body to contain '%s'", s)
				}
			}

			for _, s := range tc.NotFlagged {
				if strings.Contains(body, s) {
					t.Errorf("expected body not to contain '%s'", s)
				}
			}

			for _, s := range tc.Preserved {
				if !strings.Contains(body, s) {
					t.Errorf("expected body to contain '%s'", s)
				}
			}

			headers, err := env.store.PostStore.QueryPostHeaders(context.Background())
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := 0, len(headers); e != g {
				t.Errorf("len(headers): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAdminSlugConflict(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "foo", "Foo", "foo")
	env.seed(t, "bar", "Bar", "bar")

	res := env.do(http.MethodPost, "/posts/admin/new", adminEmail, url.Values{
		"intent": {"create"}, "title": {"Other"}, "slug": {"foo"}, "markdown": {"other"},
	})
	if e, g := http.StatusConflict, res.Code; e != g {
		t.Errorf("create: expected status '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodPost, "/posts/admin/bar", adminEmail, url.Values{
		"intent": {"update"}, "title": {"Bar"}, "slug": {"foo"}, "markdown": {"bar"},
	})
	if e, g := http.StatusConflict, res.Code; e != g {
		t.Errorf("update: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusOK, env.do(http.MethodGet, "/posts/bar", "", nil).Code; e != g {
		t.Errorf("GET /posts/bar: expected status '%v', got '%v'", e, g)
	}
}

func TestAdminSubmitIgnoresQuery(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "foo", "Foo", "foo")

	res := env.do(http.MethodPost, "/posts/admin/foo?intent=delete&title=Hijacked", adminEmail, url.Values{
		"intent": {"update"}, "title": {"Foo edited"}, "slug": {"foo"}, "markdown": {"foo"},
	})
	if e, g := http.StatusFound, res.Code; e != g {
		t.Fatalf("update: expected status '%v', got '%v'", e, g)
	}

	res = env.do(http.MethodGet, "/posts/foo", "", nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /posts/foo: expected status '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	if !strings.Contains(body, "Foo edited") {
		t.Errorf("expected updated title in body, got '%s'", body)
	}

	if strings.Contains(body, "Hijacked") {
		t.Errorf("expected query values to be ignored, got '%s'", body)
	}
}

func TestFeed(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "older", "Older post", "older")
	env.seed(t, "newer", "Newer post", "newer")

	res := env.do(http.MethodGet, "/feed.xml", "", nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("GET /feed.xml: expected status '%v', got '%v'", e, g)
	}

	if e, g := "application/rss+xml; charset=utf-8", res.Header().Get("Content-Type"); e != g {
		t.Errorf("Content-Type: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	newer, older := strings.Index(body, "<title>Newer post</title>"), strings.Index(body, "<title>Older post</title>")
	if newer == -1 || older == -1 || newer > older {
		t.Errorf("expected items from the most recent, got '%s'", body)
	}

	if !strings.Contains(body, "<link>/posts/newer</link>") {
		t.Errorf("expected item link, got '%s'", body)
	}
}
