package webui

import (
	"net/http"

	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	httpCtx "github.com/bornholm/billet/internal/http/context"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/billet/internal/http/middleware/authz"
)

// AdminGate only lets the admin through. Anonymous visitors are redirected
// to the login page, other users get a forbidden page.
func AdminGate(isAdmin authz.AssertFunc, authenticators ...authn.Authenticator) func(http.Handler) http.Handler {
	redirectToLogin := func(w http.ResponseWriter, r *http.Request) {
		next := httpCtx.CurrentURL(r.Context()).RequestURI()
		loginURL := commonComp.LoginURL(r.Context(), next)
		http.Redirect(w, r, string(loginURL), http.StatusFound)
	}

	forbidden := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.HandleError(w, r, common.NewForbiddenError())
	})

	authnMiddleware := authn.Middleware(redirectToLogin, authenticators...)
	authzMiddleware := authz.Middleware(forbidden, isAdmin)

	return func(next http.Handler) http.Handler {
		return authnMiddleware(authzMiddleware(next))
	}
}
