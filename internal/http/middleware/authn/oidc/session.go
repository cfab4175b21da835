package oidc

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

const (
	sessionKeyEmail       = "email"
	sessionKeyProvider    = "provider"
	sessionKeySubject     = "subject"
	sessionKeyDisplayName = "displayName"
)

// Authenticate implements [authn.Authenticator]. Requests without a valid
// provider session are anonymous for this authenticator.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	user, _ := h.retrieveSessionUser(r)
	return user, nil
}

var _ authn.Authenticator = &Handler{}

func (h *Handler) retrieveSessionUser(r *http.Request) (*authn.User, bool) {
	sess, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		slog.DebugContext(r.Context(), "could not decode session", slogx.Error(err))
		return nil, false
	}

	email, _ := sess.Values[sessionKeyEmail].(string)
	if sess.IsNew || email == "" {
		return nil, false
	}

	provider, _ := sess.Values[sessionKeyProvider].(string)
	subject, _ := sess.Values[sessionKeySubject].(string)
	displayName, _ := sess.Values[sessionKeyDisplayName].(string)

	return &authn.User{
		Email:       email,
		Provider:    provider,
		Subject:     subject,
		DisplayName: displayName,
	}, true
}

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user *authn.User) error {
	sess, err := h.sessionStore.New(r, h.sessionName)
	if err != nil && sess == nil {
		return errors.WithStack(err)
	}

	sess.Values[sessionKeyEmail] = user.Email
	sess.Values[sessionKeyProvider] = user.Provider
	sess.Values[sessionKeySubject] = user.Subject
	sess.Values[sessionKeyDisplayName] = user.DisplayName

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.sessionStore.New(r, h.sessionName)
	if err != nil && sess == nil {
		return errors.WithStack(err)
	}

	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
