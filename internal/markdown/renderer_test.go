package markdown

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestRenderer(t *testing.T) {
	type testCase struct {
		Name       string
		Options    []OptionFunc
		Markdown   string
		Contains   []string
		NotContain []string
	}

	testCases := []testCase{
		{
			Name:     "Heading",
			Markdown: "# Hello world",
			Contains: []string{`<h1 id="hello-world">Hello world</h1>`},
		},
		{
			Name:     "Table",
			Markdown: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			Contains: []string{"<table>", "<td>1</td>"},
		},
		{
			Name:       "LeadingThematicBreak",
			Markdown:   "---\n\nJust a rule then text",
			Contains:   []string{"<hr>", "<p>Just a rule then text</p>"},
			NotContain: []string{"<!--"},
		},
		{
			Name:       "LeadingThematicBreakThenSetextHeading",
			Markdown:   "---\nIntro paragraph\n---\n\nBody text",
			Contains:   []string{"<hr>", `<h2 id="intro-paragraph">Intro paragraph</h2>`, "<p>Body text</p>"},
			NotContain: []string{"<!--"},
		},
		{
			Name:     "YAMLLikeBlockKept",
			Markdown: "---\ntitle: Kept\n---\n\nBody",
			Contains: []string{"title: Kept", "<p>Body</p>"},
		},
		{
			Name:       "RawHTMLDropped",
			Markdown:   "<script>alert(1)</script>\n\ntext",
			Contains:   []string{"<p>text</p>"},
			NotContain: []string{"<script>"},
		},
		{
			Name:     "RawHTMLUnsafe",
			Options:  []OptionFunc{WithUnsafe(true)},
			Markdown: "<div class=\"note\">note</div>\n",
			Contains: []string{`<div class="note">note</div>`},
		},
		{
			Name:       "DataURLStripped",
			Markdown:   "[link](data:text/plain;base64,Zm9v)",
			Contains:   []string{`href="#stripped"`},
			NotContain: []string{"data:text/plain"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			renderer := NewRenderer(tc.Options...)

			html, err := renderer.Render(tc.Markdown)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			for _, s := range tc.Contains {
				if !strings.Contains(string(html), s) {
					t.Errorf("expected output to contain '%s', got '%s'", s, html)
				}
			}

			for _, s := range tc.NotContain {
				if strings.Contains(string(html), s) {
					t.Errorf("expected output not to contain '%s', got '%s'", s, html)
				}
			}
		})
	}
}

func TestRendererDeterministic(t *testing.T) {
	renderer := NewRenderer()

	source := "# Title\n\nSome *text* with a [link](https://example.org).\n\n## Title\n"

	first, err := renderer.Render(source)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for i := 0; i < 5; i++ {
		html, err := renderer.Render(source)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := first, html; e != g {
			t.Errorf("html: expected '%v', got '%v'", e, g)
		}
	}
}
