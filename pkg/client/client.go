package client

import (
	"net/http"
	"net/url"
	"time"
)

const DefaultUserAgent = "billet-client"

// Client reads posts through the JSON API of a billet server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
}

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	UserAgent  string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL:    &url.URL{Scheme: "http", Host: "localhost:3002"},
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		UserAgent:  DefaultUserAgent,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
	}
}
