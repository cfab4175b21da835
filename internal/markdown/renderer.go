package markdown

import (
	"bytes"
	"html/template"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

type Options struct {
	Unsafe       bool
	Transformers []NodeTransformer
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Unsafe:       false,
		Transformers: []NodeTransformer{StripDataURL},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithUnsafe lets raw HTML blocks and data URLs through to the output.
func WithUnsafe(unsafe bool) OptionFunc {
	return func(opts *Options) {
		opts.Unsafe = unsafe
		if unsafe {
			opts.Transformers = []NodeTransformer{}
		}
	}
}

func WithNodeTransformers(transformers ...NodeTransformer) OptionFunc {
	return func(opts *Options) {
		opts.Transformers = transformers
	}
}

type Renderer struct {
	md goldmark.Markdown
}

func (r *Renderer) Render(markdown string) (template.HTML, error) {
	var buf bytes.Buffer

	pc := parser.NewContext()

	if err := r.md.Convert([]byte(markdown), &buf, parser.WithContext(pc)); err != nil {
		return "", errors.WithStack(err)
	}

	if err := transformError(pc); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(buf.String()), nil
}

func NewRenderer(funcs ...OptionFunc) *Renderer {
	opts := NewOptions(funcs...)

	rendererOptions := []renderer.Option{}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&Transformer{transformers: opts.Transformers}, 999),
			),
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	return &Renderer{md: md}
}
