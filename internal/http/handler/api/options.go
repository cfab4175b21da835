package api

type Options struct {
	AllowedOrigins []string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		AllowedOrigins: []string{"*"},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		opts.AllowedOrigins = origins
	}
}
