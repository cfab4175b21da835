package component

import "github.com/a-h/templ"

type LinkItem struct {
	URL   templ.SafeURL
	Label string
}
