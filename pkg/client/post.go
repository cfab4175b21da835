package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bornholm/billet/internal/http/handler/api"
	"github.com/pkg/errors"
)

type PostHeader = api.PostHeader

type Post struct {
	Slug  string `yaml:"slug"`
	Title string `yaml:"title"`
	HTML  string `yaml:"html"`
}

func (c *Client) ListPosts(ctx context.Context) ([]PostHeader, error) {
	res := api.ListPostsResponse{}

	if err := c.jsonRequest(ctx, http.MethodGet, "/posts", &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return res.Posts, nil
}

// GetPost returns the rendered post identified by the given slug, or
// ErrNotFound.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	res := api.GetPostResponse{}

	if err := c.jsonRequest(ctx, http.MethodGet, "/posts/"+url.PathEscape(slug), &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Post{
		Slug:  slug,
		Title: res.Title,
		HTML:  res.HTML,
	}, nil
}
