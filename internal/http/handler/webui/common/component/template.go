package component

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// Template wraps the execution of a named html/template as a templ.Component.
func Template(tmpl *template.Template, name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
			return errors.Wrapf(err, "could not execute template '%s'", name)
		}

		return nil
	})
}

// Render renders the component as trusted HTML, to be embedded in another template.
func Render(ctx context.Context, c templ.Component) (template.HTML, error) {
	var buf bytes.Buffer

	if err := c.Render(ctx, &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buf.String()), nil
}
