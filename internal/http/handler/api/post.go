package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bornholm/billet/internal/core/model"
	"github.com/bornholm/billet/internal/core/port"
	"github.com/bornholm/go-x/slogx"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

type ListPostsResponse struct {
	Posts []PostHeader `json:"posts"`
}

type PostHeader struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type GetPostResponse struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	headers, err := h.postManager.ListPostHeaders(ctx)
	if err != nil {
		sentry.CaptureException(err)
		slog.ErrorContext(ctx, "could not list posts", slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	res := ListPostsResponse{
		Posts: make([]PostHeader, 0, len(headers)),
	}

	for _, header := range headers {
		res.Posts = append(res.Posts, PostHeader{
			Slug:  string(header.Slug),
			Title: header.Title,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := model.PostSlug(r.PathValue("slug"))

	post, err := h.postManager.GetRenderedPost(ctx, slug)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(w, r, http.StatusNotFound)
			return
		}

		sentry.CaptureException(err)
		slog.ErrorContext(ctx, "could not get post", slog.String("slug", string(slug)), slogx.Error(err))
		writeError(w, r, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, GetPostResponse{
		Title: post.Title,
		HTML:  string(post.HTML),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int) {
	var message string

	switch statusCode {
	case http.StatusNotFound:
		message = "not found"
	default:
		message = "internal server error"
	}

	writeJSON(w, r, statusCode, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, res any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := encoder.Encode(res); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(err))
	}
}
