package component

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type NavbarVModel struct {
	// UserEmail is empty for anonymous visitors.
	UserEmail string
	IsAdmin   bool
}

var layoutTemplate = template.Must(template.New("").Parse(`
{{ define "layout" }}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>{{ if .Title }}{{ .Title }} - {{ end }}Billet</title>
		<link rel="alternate" type="application/rss+xml" title="Billet" href="{{ .FeedURL }}">
		<style>
			body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 0 auto; padding: 1rem; }
			nav { display: flex; gap: 1rem; align-items: center; border-bottom: 1px solid #ddd; padding-bottom: .5rem; margin-bottom: 1rem; }
			nav .spacer { flex: 1; }
			.error { color: #b00020; }
			textarea { width: 100%; min-height: 20rem; font-family: monospace; }
			input[type=text] { width: 100%; }
		</style>
	</head>
	<body>
		<nav>
			<a href="{{ .HomeURL }}">Billet</a>
			{{ if .Navbar.IsAdmin }}<a href="{{ .AdminURL }}">Admin</a>{{ end }}
			<span class="spacer"></span>
			{{ if .Navbar.UserEmail }}
				<span>{{ .Navbar.UserEmail }}</span>
				<form method="post" action="{{ .LogoutURL }}"><button type="submit">Logout</button></form>
			{{ else }}
				<a href="{{ .LoginURL }}">Login</a>
			{{ end }}
		</nav>
		<main>{{ .Content }}</main>
	</body>
</html>
{{ end }}
`))

type layoutData struct {
	Title     string
	Navbar    NavbarVModel
	Content   template.HTML
	HomeURL   templ.SafeURL
	AdminURL  templ.SafeURL
	LoginURL  templ.SafeURL
	LogoutURL templ.SafeURL
	FeedURL   templ.SafeURL
}

// Page renders the given content within the shared page layout.
func Page(title string, navbar NavbarVModel, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := Render(ctx, content)
		if err != nil {
			return errors.WithStack(err)
		}

		data := layoutData{
			Title:     title,
			Navbar:    navbar,
			Content:   html,
			HomeURL:   BaseURL(ctx, WithPath("/posts/")),
			AdminURL:  BaseURL(ctx, WithPath("/posts/admin/")),
			LoginURL:  BaseURL(ctx, WithPath("/auth/login")),
			LogoutURL: BaseURL(ctx, WithPath("/auth/logout")),
			FeedURL:   BaseURL(ctx, WithPath("/feed.xml")),
		}

		if err := layoutTemplate.ExecuteTemplate(w, "layout", data); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
}
