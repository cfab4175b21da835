package ratelimit

import (
	"net/http"
	"time"
)

type Options struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
	// OnLimited renders the response of rejected requests.
	OnLimited http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     10 * time.Second,
		MaxBurst:     5,
		CacheSize:    1024,
		CacheTTL:     10 * time.Minute,
		OnLimited: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

// WithLimit allows maxBurst requests at once, then one every interval.
func WithLimit(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

func WithOnLimited(handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.OnLimited = handler
	}
}
