package streamer

// Renderable is the producer contract: given a context, yield a token stream.
// Stream must be idempotent — callable repeatedly, each call returning a
// fresh stream with no state retained between calls. Composite producers
// implement Stream by delegating to their children's streams, splicing their
// own tokens in at chosen points; delegation is the only composition
// mechanism.
type Renderable interface {
	Stream(ctx Context) TokenStream
}

// RenderString materializes r through a throwaway default Renderer, so simple
// callers skip explicit driver construction. A nil options map renders with
// every option unset.
func RenderString(r Renderable, options map[string]any) string {
	return New(options).RenderString(r)
}

// RenderBytes is the byte-buffer counterpart of RenderString.
func RenderBytes(r Renderable, options map[string]any) []byte {
	return New(options).RenderBytes(r)
}
