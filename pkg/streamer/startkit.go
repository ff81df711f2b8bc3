package streamer

// Small ready-made producers. Format-specific producers live in their own
// packages; these cover the shapes almost every producer tree needs: literal
// leaves, ordered composites, separated lists, and delimiter wrappers.

// Literal is a leaf producer yielding its text as a single token.
// Non-ASCII content passes through untouched; escaping is the business of
// format-specific producers.
type Literal string

// Stream yields the literal as one token.
func (l Literal) Stream(Context) TokenStream {
	return Tokens(Token(l))
}

// Chars is a leaf producer yielding its text one character per token. Output
// is identical to Literal; only the stream granularity differs.
type Chars string

// Stream yields one token per rune.
func (c Chars) Stream(Context) TokenStream {
	runes := []rune(string(c))
	toks := make([]Token, len(runes))
	for i, r := range runes {
		toks[i] = string(r)
	}
	return FromSlice(toks)
}

// Group is a composite delegating to its children in order, with nothing in
// between.
type Group []Renderable

// Stream splices the children's streams back to back, depth first.
func (g Group) Stream(ctx Context) TokenStream {
	streams := make([]TokenStream, len(g))
	for i, child := range g {
		streams[i] = child.Stream(ctx)
	}
	return Concat(streams...)
}

// SeparatedOf is the renderable counterpart of the Separated combinator: it
// delegates to each item in order with the separator tokens in between.
type SeparatedOf struct {
	Items     []Renderable
	Separator []Token
}

// Stream interleaves the items' streams with the separator.
func (s SeparatedOf) Stream(ctx Context) TokenStream {
	streams := make([]TokenStream, len(s.Items))
	for i, item := range s.Items {
		streams[i] = item.Stream(ctx)
	}
	return Separated(s.Separator, streams...)
}

// Wrapped surrounds a body producer with opening and closing delimiter
// tokens. It is the adapter RespectPriority substitutes for operands that
// need disambiguating parentheses.
type Wrapped struct {
	Open  Token
	Close Token
	Body  Renderable
}

// Wrap builds a Wrapped with the given delimiters.
func Wrap(open, close Token, body Renderable) *Wrapped {
	return &Wrapped{Open: open, Close: close, Body: body}
}

// Parens wraps body in round parentheses.
func Parens(body Renderable) *Wrapped {
	return Wrap("(", ")", body)
}

// Stream yields the opening delimiter, the body's stream, then the closing
// delimiter.
func (w *Wrapped) Stream(ctx Context) TokenStream {
	return Concat(Tokens(w.Open), w.Body.Stream(ctx), Tokens(w.Close))
}
