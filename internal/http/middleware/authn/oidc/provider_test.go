package oidc

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func TestWithProviderName(t *testing.T) {
	mux := http.NewServeMux()

	var provider string

	mux.HandleFunc("GET /providers/{provider}", func(w http.ResponseWriter, r *http.Request) {
		r = withProviderName(r)

		name, err := gothic.GetProviderName(r)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		provider = name
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/providers/gitea", nil))

	if e, g := "gitea", provider; e != g {
		t.Errorf("provider: expected '%v', got '%v'", e, g)
	}
}

func TestGetUserDisplayName(t *testing.T) {
	type testCase struct {
		Name     string
		User     goth.User
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "PreferredUsername",
			User:     goth.User{RawData: map[string]any{"preferred_username": "jdoe"}, NickName: "nick"},
			Expected: "jdoe",
		},
		{
			Name:     "NickName",
			User:     goth.User{NickName: "nick", Name: "John Doe"},
			Expected: "nick",
		},
		{
			Name:     "Name",
			User:     goth.User{Name: "John Doe"},
			Expected: "John Doe",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, getUserDisplayName(tc.User); e != g {
				t.Errorf("getUserDisplayName(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestAuthenticateAnonymous(t *testing.T) {
	handler := NewHandler(sessions.NewCookieStore([]byte("01234567890123456789012345678901")))

	user, err := handler.Authenticate(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if user != nil {
		t.Errorf("user: expected nil, got '%v'", user)
	}
}
