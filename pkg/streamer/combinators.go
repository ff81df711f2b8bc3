package streamer

// Combinators are context-agnostic: they operate purely on streams and know
// nothing about the producers behind them.

// Separated interleaves separator between streams: stream1, separator,
// stream2, separator, ..., streamN. Zero streams yield an empty result; a
// single stream passes through unchanged. The separator never leads or
// trails.
func Separated(separator []Token, streams ...TokenStream) TokenStream {
	switch len(streams) {
	case 0:
		return Empty()
	case 1:
		return streams[0]
	}
	if len(separator) == 0 {
		return Concat(streams...)
	}
	return &interleaved{streams: streams, separator: separator}
}

type interleaved struct {
	streams   []TokenStream
	separator []Token
	pos       int
	sepPos    int
	emitSep   bool
}

func (s *interleaved) Next() (Token, bool) {
	for {
		if s.emitSep {
			if s.sepPos < len(s.separator) {
				tok := s.separator[s.sepPos]
				s.sepPos++
				return tok, true
			}
			s.emitSep = false
			s.sepPos = 0
		}
		if s.pos >= len(s.streams) {
			return "", false
		}
		if tok, ok := s.streams[s.pos].Next(); ok {
			return tok, true
		}
		s.pos++
		if s.pos < len(s.streams) {
			s.emitSep = true
		}
	}
}

// Reindent inserts prefix at the start of every non-empty line of src: once
// before the first token, and again after every LineBreak token. Lines that
// are immediately another line break stay unprefixed, and a line break with
// nothing after it inserts nothing. Wrapping only a container's inner content
// gives one insertion layer per nesting depth, so a structure nested N deep
// accumulates N copies of the indent unit on each innermost line without any
// combinator tracking depth. An empty prefix is a no-op and src passes
// through unchanged.
func Reindent(src TokenStream, prefix Token) TokenStream {
	if prefix == "" {
		return src
	}
	return &reindentStream{src: src, prefix: prefix, atLineStart: true}
}

type reindentStream struct {
	src         TokenStream
	prefix      Token
	pending     Token
	hasPending  bool
	atLineStart bool
}

func (r *reindentStream) Next() (Token, bool) {
	if r.hasPending {
		tok := r.pending
		r.hasPending = false
		r.atLineStart = tok == LineBreak
		return tok, true
	}
	tok, ok := r.src.Next()
	if !ok {
		return "", false
	}
	if r.atLineStart && tok != LineBreak {
		r.pending = tok
		r.hasPending = true
		r.atLineStart = false
		return r.prefix, true
	}
	r.atLineStart = tok == LineBreak
	return tok, true
}
