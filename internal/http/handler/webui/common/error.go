package common

import (
	"net/http"

	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/pkg/errors"
)

// Error is an error carrying the status code and the message displayed
// on the error page.
type Error struct {
	reason      string
	userMessage string
	statusCode  int
	links       []component.LinkItem
}

// Error implements UserFacingError.
func (e *Error) Error() string {
	return e.reason
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Links implements WithErrorLinks.
func (e *Error) Links() []component.LinkItem {
	return e.links
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
	_ WithErrorLinks  = &Error{}
)

func NewError(reason string, userMessage string, statusCode int, links ...component.LinkItem) *Error {
	return &Error{
		reason:      reason,
		userMessage: userMessage,
		statusCode:  statusCode,
		links:       links,
	}
}

func NewHTTPError(statusCode int, links ...component.LinkItem) *Error {
	text := http.StatusText(statusCode)
	return NewError(text, text, statusCode, links...)
}

func NewForbiddenError() *Error {
	return NewError("forbidden", "You are not allowed to access this page.", http.StatusForbidden)
}

func NewTooManyRequestsError() *Error {
	return NewError("too many requests", "Too many login attempts, please retry later.", http.StatusTooManyRequests)
}

// FromStoreError translates the store sentinel errors into errors carrying
// their HTTP status. Other errors are returned unchanged.
func FromStoreError(err error, links ...component.LinkItem) error {
	switch {
	case errors.Is(err, port.ErrNotFound):
		return errors.WithStack(NewHTTPError(http.StatusNotFound, links...))
	case errors.Is(err, port.ErrAlreadyExists):
		return errors.WithStack(NewError(err.Error(), "This slug is already used by another post.", http.StatusConflict, links...))
	default:
		return err
	}
}
