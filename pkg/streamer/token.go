package streamer

// Token is an atomic output fragment. Tokens carry no structural metadata:
// combinators that care about layout (Reindent) recognize specific content,
// such as the LineBreak token, by value.
type Token = string

// LineBreak is the token Reindent treats as the end of a line.
const LineBreak Token = "\n"

// TokenStream is a lazy, forward-only sequence of tokens. A stream is
// produced by exactly one Renderable invocation and drained by exactly one
// consumer; it is never rewound or replayed. Next reports ok=false once the
// stream is exhausted and must keep reporting ok=false afterwards.
type TokenStream interface {
	Next() (Token, bool)
}

// StreamFunc adapts a pull function to the TokenStream interface.
type StreamFunc func() (Token, bool)

// Next calls f.
func (f StreamFunc) Next() (Token, bool) { return f() }

type sliceStream struct {
	toks []Token
	pos  int
}

func (s *sliceStream) Next() (Token, bool) {
	if s.pos >= len(s.toks) {
		return "", false
	}
	tok := s.toks[s.pos]
	s.pos++
	return tok, true
}

// Tokens returns a stream over the given tokens, in order.
func Tokens(toks ...Token) TokenStream {
	return &sliceStream{toks: toks}
}

// FromSlice returns a stream over a caller-owned token slice. The slice must
// not be mutated while the stream is being drained.
func FromSlice(toks []Token) TokenStream {
	return &sliceStream{toks: toks}
}

// Empty returns a stream that is already exhausted.
func Empty() TokenStream {
	return Tokens()
}

type concatStream struct {
	streams []TokenStream
	pos     int
}

func (c *concatStream) Next() (Token, bool) {
	for c.pos < len(c.streams) {
		if tok, ok := c.streams[c.pos].Next(); ok {
			return tok, true
		}
		c.pos++
	}
	return "", false
}

// Concat splices streams back to back: every token of the first stream, then
// every token of the second, and so on. This is the delegation primitive
// composite producers use to order their own tokens around their children's.
func Concat(streams ...TokenStream) TokenStream {
	return &concatStream{streams: streams}
}

// Drain pulls s to exhaustion and returns every token in order.
func Drain(s TokenStream) []Token {
	var out []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
