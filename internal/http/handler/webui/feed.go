package webui

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/bornholm/billet/internal/core/model"
	commonComp "github.com/bornholm/billet/internal/http/handler/webui/common/component"
	"github.com/bornholm/go-x/slogx"
	"github.com/gorilla/feeds"
)

func (h *Handler) getFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	headers, err := h.postManager.ListPostHeaders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list posts", slogx.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Most recent first
	headers = slices.Clone(headers)
	slices.Reverse(headers)

	feed := &feeds.Feed{
		Title: "Billet",
		Link:  &feeds.Link{Href: string(commonComp.BaseURL(ctx, commonComp.WithPath("/posts/")))},
		Items: make([]*feeds.Item, 0, len(headers)),
	}

	if len(headers) > 0 {
		feed.Created = headers[0].CreatedAt
	} else {
		feed.Created = time.Now()
	}

	for _, p := range headers {
		feed.Items = append(feed.Items, newFeedItem(r, p))
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")

	if err := feed.WriteRss(w); err != nil {
		slog.ErrorContext(ctx, "could not write feed", slogx.Error(err))
	}
}

func newFeedItem(r *http.Request, header model.PostHeader) *feeds.Item {
	link := string(commonComp.PostURL(r.Context(), header.Slug))

	return &feeds.Item{
		Id:      link,
		Title:   header.Title,
		Link:    &feeds.Link{Href: link},
		Created: header.CreatedAt,
	}
}
