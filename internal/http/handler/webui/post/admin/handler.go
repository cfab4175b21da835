package admin

import (
	"net/http"

	"github.com/bornholm/billet/internal/core/service"
)

// Handler serves the post administration pages. It expects to be
// mounted behind the admin gate.
type Handler struct {
	mux         *http.ServeMux
	postManager *service.PostManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(postManager *service.PostManager) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		postManager: postManager,
	}

	h.mux.HandleFunc("GET /{$}", h.getPostListPage)
	h.mux.HandleFunc("GET /{slug}", h.getPostEditPage)
	h.mux.HandleFunc("POST /{slug}", h.handlePostSubmit)

	return h
}

var _ http.Handler = &Handler{}
