package component

import (
	"html/template"

	"github.com/a-h/templ"
	common "github.com/bornholm/billet/internal/http/handler/webui/common/component"
)

type PostItem struct {
	Title   string
	Slug    string
	EditURL templ.SafeURL
	ViewURL templ.SafeURL
}

type PostListPageVModel struct {
	Navbar common.NavbarVModel
	Posts  []PostItem
	NewURL templ.SafeURL
}

var postListPageTemplate = template.Must(template.New("").Parse(`
{{ define "list" }}
<section class="admin-posts">
	<h1>Posts administration</h1>
	<p><a href="{{ .NewURL }}">New post</a></p>
	{{ if .Posts }}
	<table>
		<thead><tr><th>Title</th><th>Slug</th><th></th></tr></thead>
		<tbody>
		{{ range .Posts }}
			<tr>
				<td><a href="{{ .EditURL }}">{{ .Title }}</a></td>
				<td><code>{{ .Slug }}</code></td>
				<td><a href="{{ .ViewURL }}">View</a></td>
			</tr>
		{{ end }}
		</tbody>
	</table>
	{{ else }}
	<p>No post yet.</p>
	{{ end }}
</section>
{{ end }}
`))

func PostListPage(vmodel PostListPageVModel) templ.Component {
	return common.Page("Posts administration", vmodel.Navbar, common.Template(postListPageTemplate, "list", vmodel))
}
