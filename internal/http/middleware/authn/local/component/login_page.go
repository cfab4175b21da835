package component

import (
	"html/template"

	"github.com/a-h/templ"
	common "github.com/bornholm/billet/internal/http/handler/webui/common/component"
)

type Provider struct {
	ID    string
	Label string
	Icon  string
	URL   templ.SafeURL
}

type LoginPageVModel struct {
	Email     string
	Next      string
	Message   string
	ActionURL templ.SafeURL
	Providers []Provider
}

var loginPageTemplate = template.Must(template.New("").Parse(`
{{ define "login" }}
<section class="login">
	<h1>Sign in</h1>
	{{ if .Message }}<p class="error">{{ .Message }}</p>{{ end }}
	<form method="post" action="{{ .ActionURL }}">
		<input type="hidden" name="next" value="{{ .Next }}">
		<p>
			<label for="email">Email</label>
			<input type="text" id="email" name="email" value="{{ .Email }}" autocomplete="username" required>
		</p>
		<p>
			<label for="password">Password</label>
			<input type="password" id="password" name="password" autocomplete="current-password" required>
		</p>
		<button type="submit">Sign in</button>
	</form>
	{{ if .Providers }}
	<ul class="providers">
		{{ range .Providers }}<li><a href="{{ .URL }}"><i class="{{ .Icon }}"></i> {{ .Label }}</a></li>{{ end }}
	</ul>
	{{ end }}
</section>
{{ end }}
`))

func LoginPage(vmodel LoginPageVModel) templ.Component {
	return common.Page("Sign in", common.NavbarVModel{}, common.Template(loginPageTemplate, "login", vmodel))
}
