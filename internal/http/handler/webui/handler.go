package webui

import (
	"net/http"
	"strings"

	"github.com/bornholm/billet/internal/core/service"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/handler/webui/post"
	"github.com/bornholm/billet/internal/http/handler/webui/post/admin"
	"github.com/bornholm/billet/internal/http/middleware/authz"
)

type Handler struct {
	mux         *http.ServeMux
	postManager *service.PostManager
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(postManager *service.PostManager, adminGate func(http.Handler) http.Handler, isAdmin authz.AssertFunc) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		postManager: postManager,
	}

	h.mux.HandleFunc("GET /{$}", h.redirectToPosts)
	h.mux.HandleFunc("GET /feed.xml", h.getFeed)

	mount(h.mux, "/posts/admin/", adminGate(admin.NewHandler(postManager)))
	mount(h.mux, "/posts/", post.NewHandler(postManager, isAdmin))

	return h
}

func (h *Handler) redirectToPosts(w http.ResponseWriter, r *http.Request) {
	postsURL := commonComp.BaseURL(r.Context(), commonComp.WithPath("/posts/"))
	http.Redirect(w, r, string(postsURL), http.StatusFound)
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
