// Package templatelit provides a template-expanded leaf producer backed by
// pongo2, the engine behind the rendering stack's template seam. Both the
// parse and the expansion happen at construction time, so a bad template or
// missing filter fails before the producer ever joins a tree, and streaming
// stays pure.
package templatelit

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// Template is a leaf producer holding already-expanded template output.
type Template struct {
	rendered string
}

// New parses source as a pongo2 template and expands it with data. Parse and
// execution errors surface here, at construction time.
func New(source string, data map[string]any) (*Template, error) {
	tpl, err := pongo2.FromString(source)
	if err != nil {
		return nil, fmt.Errorf("templatelit: parse template: %w", err)
	}
	rendered, err := tpl.Execute(pongo2.Context(data))
	if err != nil {
		return nil, fmt.Errorf("templatelit: execute template: %w", err)
	}
	return &Template{rendered: rendered}, nil
}

// Stream yields the expanded text as one token.
func (t *Template) Stream(streamer.Context) streamer.TokenStream {
	return streamer.Tokens(t.rendered)
}
