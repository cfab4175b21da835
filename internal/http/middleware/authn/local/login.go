package local

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/billet/internal/http/middleware/authn"
	"github.com/bornholm/billet/internal/http/middleware/authn/local/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const ProviderName = "local"

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	vmodel := h.newLoginPageVModel(r)
	vmodel.Next = r.URL.Query().Get("next")

	loginPage := component.LoginPage(vmodel)
	templ.Handler(loginPage).ServeHTTP(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		common.HandleError(w, r, common.NewHTTPError(http.StatusBadRequest))
		return
	}

	ctx := r.Context()

	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	next := r.PostFormValue("next")

	user, err := h.checkCredentials(r, email, password)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			slog.InfoContext(ctx, "invalid login attempt", slog.String("email", email))

			vmodel := h.newLoginPageVModel(r)
			vmodel.Email = email
			vmodel.Next = next
			vmodel.Message = "Invalid email or password."

			templ.Handler(component.LoginPage(vmodel), templ.WithStatus(http.StatusUnauthorized)).ServeHTTP(w, r)
			return
		}

		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(err))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.InfoContext(ctx, "user logged in", slog.String("user", user.String()))

	http.Redirect(w, r, safeRedirect(r, next), http.StatusSeeOther)
}

var errInvalidCredentials = errors.New("invalid credentials")

func (h *Handler) checkCredentials(r *http.Request, email string, password string) (*authn.User, error) {
	if email == "" || password == "" {
		return nil, errors.WithStack(errInvalidCredentials)
	}

	user, err := h.userStore.GetUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(errInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash(), []byte(password)); err != nil {
		return nil, errors.WithStack(errInvalidCredentials)
	}

	return &authn.User{
		Email:       user.Email(),
		Provider:    ProviderName,
		Subject:     string(user.ID()),
		DisplayName: user.Email(),
	}, nil
}

func (h *Handler) newLoginPageVModel(r *http.Request) component.LoginPageVModel {
	ctx := r.Context()

	return component.LoginPageVModel{
		ActionURL: commonComp.LoginURL(ctx, ""),
		Providers: h.providers,
	}
}

// safeRedirect only allows redirections to local paths. Browsers drop tabs
// and newlines from urls and read backslashes as slashes, so those are refused.
func safeRedirect(r *http.Request, next string) string {
	fallback := string(commonComp.BaseURL(r.Context(), commonComp.WithPath("/posts/")))

	if next == "" || strings.ContainsFunc(next, unicode.IsControl) || strings.Contains(next, "\\") {
		return fallback
	}

	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}

	return next
}
