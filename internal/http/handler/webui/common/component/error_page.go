package component

import (
	"html/template"

	"github.com/a-h/templ"
)

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
	HomeURL templ.SafeURL
}

var errorPageTemplate = template.Must(template.New("").Parse(`
{{ define "error" }}
<section class="error-page">
	<h1 class="error">{{ .Message }}</h1>
	<ul>
		{{ range .Links }}<li><a href="{{ .URL }}">{{ .Label }}</a></li>{{ end }}
		<li><a href="{{ .HomeURL }}">Back to posts</a></li>
	</ul>
</section>
{{ end }}
`))

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Page(vmodel.Message, NavbarVModel{}, Template(errorPageTemplate, "error", vmodel))
}
