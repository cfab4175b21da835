package authn

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/billet/internal/http/handler/webui/common"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

var (
	ErrSkipRequest = errors.New("skip request")
)

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (*User, error)
}

// Middleware stores the first authenticated user in the request context
// and calls onUnauthorized when no authenticator recognizes the request.
func Middleware(onUnauthorized func(w http.ResponseWriter, r *http.Request), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(w, r, authenticators...)
			if err != nil {
				if errors.Is(err, ErrSkipRequest) {
					return
				}

				slog.ErrorContext(r.Context(), "could not authenticate user", slogx.Error(err))
				common.HandleError(w, r, err)
				return
			}

			if user == nil {
				onUnauthorized(w, r)
				return
			}

			next.ServeHTTP(w, withUser(r, user))
		}

		return fn
	}
}

// OptionalMiddleware is like Middleware but lets anonymous requests through.
func OptionalMiddleware(authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		var fn http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticate(w, r, authenticators...)
			if err != nil {
				if errors.Is(err, ErrSkipRequest) {
					return
				}

				slog.WarnContext(r.Context(), "could not authenticate user", slogx.Error(err))
			}

			if user != nil {
				r = withUser(r, user)
			}

			next.ServeHTTP(w, r)
		}

		return fn
	}
}

func authenticate(w http.ResponseWriter, r *http.Request, authenticators ...Authenticator) (*User, error) {
	for _, authenticator := range authenticators {
		user, err := authenticator.Authenticate(w, r)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if user != nil {
			return user, nil
		}
	}

	return nil, nil
}

func withUser(r *http.Request, user *User) *http.Request {
	ctx := r.Context()
	ctx = setContextUser(ctx, user)
	ctx = slogx.WithAttrs(ctx, slog.String("user", user.String()))

	return r.WithContext(ctx)
}
