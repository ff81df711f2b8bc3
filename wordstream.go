// Package wordstream re-exports the streaming core so callers can build and
// render producer trees without importing the internal package layout.
package wordstream

import (
	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// Renderable is the producer contract: given a context, yield a token stream.
type Renderable = streamer.Renderable

// Context is the shared, read-only configuration of one render call.
type Context = streamer.Context

// Token is an atomic output fragment.
type Token = streamer.Token

// TokenStream is the lazy, forward-only, single-drain token sequence.
type TokenStream = streamer.TokenStream

// Renderer materializes a producer tree into strings, bytes, or incremental
// views.
type Renderer = streamer.Renderer

// New builds a Renderer over an optional options map.
func New(options map[string]any) *Renderer {
	return streamer.New(options)
}

// RenderString materializes r through a default Renderer. It is the simplest
// entry point for callers that just want the final text.
func RenderString(r Renderable, options map[string]any) string {
	return streamer.RenderString(r, options)
}

// RenderBytes is the byte-buffer counterpart of RenderString.
func RenderBytes(r Renderable, options map[string]any) []byte {
	return streamer.RenderBytes(r, options)
}
