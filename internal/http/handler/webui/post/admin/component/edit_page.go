package component

import (
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/service"
	common "github.com/bornholm/billet/internal/http/handler/webui/common/component"
)

type PostEditPageVModel struct {
	Navbar    common.NavbarVModel
	IsNew     bool
	ActionURL templ.SafeURL
	ListURL   templ.SafeURL

	Title    string
	Slug     string
	Markdown string
	Errors   service.FieldErrors
}

var postEditPageTemplate = template.Must(template.New("").Parse(`
{{ define "edit" }}
<section class="admin-post">
	<h1>{{ if .IsNew }}New post{{ else }}Edit post{{ end }}</h1>
	<p><a href="{{ .ListURL }}">Back to posts administration</a></p>
	<form method="post" action="{{ .ActionURL }}">
		<p>
			<label for="title">Title</label>
			<input type="text" id="title" name="title" value="{{ .Title }}">
			{{ with .Errors.Title }}<span class="error" id="title-error">{{ . }}</span>{{ end }}
		</p>
		<p>
			<label for="slug">Slug</label>
			<input type="text" id="slug" name="slug" value="{{ .Slug }}">
			{{ with .Errors.Slug }}<span class="error" id="slug-error">{{ . }}</span>{{ end }}
		</p>
		<p>
			<label for="markdown">Markdown</label>
			<textarea id="markdown" name="markdown">{{ .Markdown }}</textarea>
			{{ with .Errors.Markdown }}<span class="error" id="markdown-error">{{ . }}</span>{{ end }}
		</p>
		{{ if .IsNew }}
		<button type="submit" name="intent" value="create">Create post</button>
		{{ else }}
		<button type="submit" name="intent" value="update">Update post</button>
		<button type="submit" name="intent" value="delete">Delete post</button>
		{{ end }}
	</form>
</section>
{{ end }}
`))

func PostEditPage(vmodel PostEditPageVModel) templ.Component {
	title := "Edit post"
	if vmodel.IsNew {
		title = "New post"
	}

	return common.Page(title, vmodel.Navbar, common.Template(postEditPageTemplate, "edit", vmodel))
}
