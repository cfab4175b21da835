package markdown

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

const frontMatterDelimiter = "---"

type FrontMatter map[string]any

// String returns the value of the given key, or an empty string
// when missing or not a scalar.
func (f FrontMatter) String(key string) string {
	raw, exists := f[key]
	if !exists || raw == nil {
		return ""
	}

	switch v := raw.(type) {
	case string:
		return v
	case map[any]any, map[string]any, []any:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseFrontMatter extracts the YAML front matter of the given document
// and returns it along with the remaining markdown body.
func ParseFrontMatter(data []byte) (FrontMatter, []byte, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	pc := parser.NewContext()
	md.Parser().Parse(text.NewReader(data), parser.WithContext(pc))

	metadata, err := meta.TryGet(pc)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not parse front matter")
	}

	return FrontMatter(metadata), stripFrontMatter(data), nil
}

func stripFrontMatter(data []byte) []byte {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || string(bytes.TrimSpace(lines[0])) != frontMatterDelimiter {
		return data
	}

	offset := len(lines[0])
	for _, l := range lines[1:] {
		offset += len(l)
		if string(bytes.TrimSpace(l)) == frontMatterDelimiter {
			return bytes.TrimLeft(data[offset:], "\r\n")
		}
	}

	return data
}
