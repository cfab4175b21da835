package post

import (
	"net/http"

	"github.com/bornholm/billet/internal/core/service"
	"github.com/bornholm/billet/internal/http/middleware/authz"
)

type Handler struct {
	mux         *http.ServeMux
	postManager *service.PostManager
	isAdmin     authz.AssertFunc
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(postManager *service.PostManager, isAdmin authz.AssertFunc) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		postManager: postManager,
		isAdmin:     isAdmin,
	}

	h.mux.HandleFunc("GET /{$}", h.getPostListPage)
	h.mux.HandleFunc("GET /{slug}", h.getPostPage)

	return h
}

var _ http.Handler = &Handler{}
