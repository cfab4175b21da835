package component

import (
	"html/template"
	"time"

	"github.com/a-h/templ"
	common "github.com/bornholm/billet/internal/http/handler/webui/common/component"
)

type PostItem struct {
	Title     string
	URL       templ.SafeURL
	CreatedAt time.Time
	// Age is the humanized elapsed time since creation
	Age string
}

type PostListPageVModel struct {
	Navbar   common.NavbarVModel
	Posts    []PostItem
	AdminURL templ.SafeURL
}

var postListPageTemplate = template.Must(template.New("").Parse(`
{{ define "list" }}
<section class="posts">
	<h1>Posts</h1>
	{{ if .AdminURL }}<p><a href="{{ .AdminURL }}">Manage posts</a></p>{{ end }}
	{{ if .Posts }}
	<ul>
		{{ range .Posts }}
		<li>
			<a href="{{ .URL }}">{{ .Title }}</a>
			{{ if .Age }}<time datetime="{{ .CreatedAt.Format "2006-01-02T15:04:05Z07:00" }}">{{ .Age }}</time>{{ end }}
		</li>
		{{ end }}
	</ul>
	{{ else }}
	<p>No post yet.</p>
	{{ end }}
</section>
{{ end }}
`))

func PostListPage(vmodel PostListPageVModel) templ.Component {
	return common.Page("Posts", vmodel.Navbar, common.Template(postListPageTemplate, "list", vmodel))
}
