package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	for _, fn := range funcs {
		fn(u)
	}

	return u
}

// WithPath joins the given segments to the url path.
func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		trailingSlash := len(paths) > 0 && strings.HasSuffix(paths[len(paths)-1], "/")

		u.Path = path.Join(append([]string{u.Path}, paths...)...)

		if trailingSlash && u.Path != "/" {
			u.Path += "/"
		}
	}
}

func WithoutValues(names ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, n := range names {
			query.Del(n)
		}
		u.RawQuery = query.Encode()
	}
}

func WithValuesReset() MutationFunc {
	return func(u *url.URL) {
		u.RawQuery = ""
	}
}

func WithValues(pairs ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for i := 0; i+1 < len(pairs); i += 2 {
			query.Set(pairs[i], pairs[i+1])
		}
		u.RawQuery = query.Encode()
	}
}
