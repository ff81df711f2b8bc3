package streamer

import (
	"io"
	"strings"
)

// Renderer is the driver: it owns context construction and materialization.
// Every materialization method invokes the root's Stream exactly once and
// drains the lazy result fully; none of them supports early termination, so a
// producer that never ends will not terminate draining either.
type Renderer struct {
	ctx Context
}

// New builds a Renderer over an optional options map. A nil map means every
// option is unset and producers fall back to their documented defaults.
func New(options map[string]any) *Renderer {
	return &Renderer{ctx: NewContext(options)}
}

// Context exposes the context this renderer passes to producers, mainly so
// consumers validating option shapes can inspect it before rendering.
func (r *Renderer) Context() Context {
	return r.ctx
}

// Stream returns root's token stream exactly as produced. Granularity is
// producer-defined: a leaf over multi-character text may yield one token per
// character or one token for the whole string.
func (r *Renderer) Stream(root Renderable) TokenStream {
	return root.Stream(r.ctx)
}

// RenderString drains root's stream and concatenates every token, in order,
// into the final output.
func (r *Renderer) RenderString(root Renderable) string {
	var sb strings.Builder
	stream := root.Stream(r.ctx)
	for {
		tok, ok := stream.Next()
		if !ok {
			return sb.String()
		}
		sb.WriteString(tok)
	}
}

// RenderBytes drains root's stream into a single UTF-8 byte buffer.
func (r *Renderer) RenderBytes(root Renderable) []byte {
	return []byte(r.RenderString(root))
}

// RuneStream returns a normalized view of root's stream yielding exactly one
// character per token, independent of producer granularity.
func (r *Renderer) RuneStream(root Renderable) TokenStream {
	return &runeStream{src: root.Stream(r.ctx)}
}

// Reader returns an io.Reader draining root's stream incrementally, one pull
// per exhausted buffer. It is the byte-at-a-time counterpart of RuneStream
// for consumers wired to the standard io surface.
func (r *Renderer) Reader(root Renderable) io.Reader {
	return &streamReader{src: root.Stream(r.ctx)}
}

type runeStream struct {
	src     TokenStream
	pending []rune
}

func (s *runeStream) Next() (Token, bool) {
	for len(s.pending) == 0 {
		tok, ok := s.src.Next()
		if !ok {
			return "", false
		}
		s.pending = []rune(tok)
	}
	r := s.pending[0]
	s.pending = s.pending[1:]
	return string(r), true
}

type streamReader struct {
	src TokenStream
	buf []byte
	eof bool
}

func (s *streamReader) Read(p []byte) (int, error) {
	for len(s.buf) == 0 {
		if s.eof {
			return 0, io.EOF
		}
		tok, ok := s.src.Next()
		if !ok {
			s.eof = true
			return 0, io.EOF
		}
		s.buf = []byte(tok)
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}
