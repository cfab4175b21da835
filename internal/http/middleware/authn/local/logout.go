package local

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath(h.logoutRedirect))

	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}
