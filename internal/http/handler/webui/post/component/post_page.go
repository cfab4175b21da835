package component

import (
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/billet/internal/core/model"
	common "github.com/bornholm/billet/internal/http/handler/webui/common/component"
)

type PostPageVModel struct {
	Navbar common.NavbarVModel
	Slug   model.PostSlug
	Title  string
	// HTML is inserted as is. It comes from the markdown renderer
	// and posts are only authored by the admin.
	HTML    template.HTML
	Lang    string
	EditURL templ.SafeURL
}

var postPageTemplate = template.Must(template.New("").Parse(`
{{ define "post" }}
<article{{ if .Lang }} lang="{{ .Lang }}"{{ end }}>
	<h1>{{ .Title }}</h1>
	{{ if .EditURL }}<p><a href="{{ .EditURL }}">Edit</a></p>{{ end }}
	<div class="content">{{ .HTML }}</div>
</article>
{{ end }}
`))

func PostPage(vmodel PostPageVModel) templ.Component {
	return common.Page(vmodel.Title, vmodel.Navbar, common.Template(postPageTemplate, "post", vmodel))
}
