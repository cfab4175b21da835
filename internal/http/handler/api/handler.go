package api

import (
	"net/http"

	"github.com/bornholm/billet/internal/core/service"
	"github.com/rs/cors"
)

type Handler struct {
	postManager *service.PostManager
	mux         *http.ServeMux
	handler     http.Handler
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func NewHandler(postManager *service.PostManager, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		postManager: postManager,
		mux:         &http.ServeMux{},
	}

	h.mux.HandleFunc("GET /posts", h.handleListPosts)
	h.mux.HandleFunc("GET /posts/{slug}", h.handleGetPost)

	h.handler = cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(h.mux)

	return h
}

var _ http.Handler = &Handler{}
