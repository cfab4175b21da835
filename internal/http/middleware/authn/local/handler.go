package local

import (
	"net/http"

	"github.com/bornholm/billet/internal/core/port"
	"github.com/gorilla/sessions"
)

type Handler struct {
	mux            *http.ServeMux
	sessionStore   sessions.Store
	sessionName    string
	userStore      port.UserStore
	providers      []Provider
	logoutRedirect string
}

// ServeHTTP implements [http.Handler].
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessionStore sessions.Store, userStore port.UserStore, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:            http.NewServeMux(),
		sessionStore:   sessionStore,
		sessionName:    opts.SessionName,
		userStore:      userStore,
		providers:      opts.Providers,
		logoutRedirect: opts.LogoutRedirect,
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.Handle("POST /login", opts.LoginMiddleware(http.HandlerFunc(h.handleLogin)))
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
