package oidc

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	httpCtx "github.com/bornholm/billet/internal/http/context"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/go-x/slogx"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/pkg/errors"
)

func (h *Handler) handleProvider(w http.ResponseWriter, r *http.Request) {
	r = withProviderName(r)

	if _, err := gothic.CompleteUserAuth(w, r); err == nil {
		http.Redirect(w, r, h.logoutURL(r), http.StatusTemporaryRedirect)
	} else {
		gothic.BeginAuthHandler(w, r)
	}
}

func (h *Handler) handleProviderCallback(w http.ResponseWriter, r *http.Request) {
	r = withProviderName(r)

	gothUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not complete user auth", slogx.Error(err))
		http.Redirect(w, r, h.logoutURL(r), http.StatusTemporaryRedirect)
		return
	}

	ctx := r.Context()

	slog.DebugContext(ctx, "authenticated user", slog.Any("user", gothUser))

	user := &authn.User{
		Email:       gothUser.Email,
		Provider:    gothUser.Provider,
		Subject:     gothUser.UserID,
		DisplayName: getUserDisplayName(gothUser),
	}

	if user.Email == "" {
		slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(errors.New("user email missing")))
		http.Redirect(w, r, h.logoutURL(r), http.StatusTemporaryRedirect)
		return
	}

	if user.Provider == "" {
		slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(errors.New("user provider missing")))
		http.Redirect(w, r, h.logoutURL(r), http.StatusTemporaryRedirect)
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(r.Context(), "could not store session user", slogx.Error(err))
		http.Redirect(w, r, h.logoutURL(r), http.StatusTemporaryRedirect)
		return
	}

	slog.InfoContext(ctx, "user logged in", slog.String("user", user.String()))

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, baseURL.JoinPath("/posts/").String(), http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, _ := h.retrieveSessionUser(r)

	if err := h.clearSession(w, r); err != nil {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	baseURL := httpCtx.BaseURL(ctx)

	if user == nil {
		http.Redirect(w, r, baseURL.JoinPath("/posts/").String(), http.StatusTemporaryRedirect)
		return
	}

	redirectURL := baseURL.JoinPath(fmt.Sprintf("/auth/oidc/providers/%s/logout", user.Provider))

	http.Redirect(w, r, redirectURL.String(), http.StatusTemporaryRedirect)
}

func (h *Handler) handleProviderLogout(w http.ResponseWriter, r *http.Request) {
	r = withProviderName(r)
	ctx := r.Context()

	if err := gothic.Logout(w, r); err != nil {
		slog.WarnContext(ctx, "could not logout user", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, baseURL.JoinPath("/posts/").String(), http.StatusTemporaryRedirect)
}

func (h *Handler) logoutURL(r *http.Request) string {
	baseURL := httpCtx.BaseURL(r.Context())
	return baseURL.JoinPath("/auth/oidc/logout").String()
}

// withProviderName exposes the provider path value where gothic looks for it.
func withProviderName(r *http.Request) *http.Request {
	provider := r.PathValue("provider")
	if provider == "" {
		return r
	}

	query := r.URL.Query()
	query.Set("provider", provider)

	r = r.Clone(r.Context())
	r.URL.RawQuery = query.Encode()

	return r
}

func getUserDisplayName(user goth.User) string {
	var displayName string

	rawPreferredUsername, exists := user.RawData["preferred_username"]
	if exists {
		if preferredUsername, ok := rawPreferredUsername.(string); ok {
			displayName = preferredUsername
		}
	}

	if displayName == "" {
		displayName = user.NickName
	}

	if displayName == "" {
		displayName = user.Name
	}

	if displayName == "" {
		displayName = strings.TrimSpace(user.FirstName + " " + user.LastName)
	}

	if displayName == "" {
		displayName = user.UserID
	}

	return displayName
}
