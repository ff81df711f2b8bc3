package jsonenc

import (
	"reflect"
	"sort"
	"strings"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// ToRenderable maps a Go value to a JSON producer tree. Supported inputs are
// nil, booleans, strings, the integer and float kinds, []any, maps with
// string keys, other slices and arrays, and values that already implement
// streamer.Renderable (adopted as-is, which lets callers splice hand-built
// producers into an encoded document). Anything else fails immediately with
// an UnsupportedTypeError; rendering is never attempted on a malformed tree.
//
// Map keys are emitted in sorted order so output is deterministic.
func ToRenderable(value any) (streamer.Renderable, error) {
	switch v := value.(type) {
	case nil:
		return Literal{}, nil
	case streamer.Renderable:
		return v, nil
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Literal{value: v}, nil
	case map[string]any:
		return objectFromMap(v)
	case []any:
		items := make([]streamer.Renderable, len(v))
		for i, elem := range v {
			item, err := ToRenderable(elem)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return &Array{items: items}, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]streamer.Renderable, rv.Len())
		for i := range items {
			item, err := ToRenderable(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return &Array{items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Value: value}
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return objectFromMap(m)
	}
	return nil, &UnsupportedTypeError{Value: value}
}

func objectFromMap(m map[string]any) (*Object, error) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	members := make([]Member, 0, len(m))
	for _, key := range keys {
		child, err := ToRenderable(m[key])
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: key, Value: child})
	}
	return &Object{members: members}, nil
}

// Literal is the scalar JSON producer: null, booleans, numbers, and strings.
// The zero value renders null.
type Literal struct {
	value any
}

// NewLiteral wraps a scalar. It accepts anything; non-scalar content will
// surface as garbage JSON, so prefer ToRenderable for untrusted input.
func NewLiteral(value any) Literal {
	return Literal{value: value}
}

// Stream yields the scalar as a single token. Strings are escaped per the
// context's ensure_ascii setting; NaN and infinities are emitted as-is, the
// way lenient encoders do.
func (l Literal) Stream(ctx streamer.Context) streamer.TokenStream {
	switch v := l.value.(type) {
	case nil:
		return streamer.Tokens("null")
	case bool:
		if v {
			return streamer.Tokens("true")
		}
		return streamer.Tokens("false")
	case string:
		ensureASCII, _ := streamer.BoolOption(ctx, OptionEnsureASCII, true)
		return streamer.Tokens(`"` + Escape(v, ensureASCII) + `"`)
	default:
		return streamer.Tokens(formatNumber(v))
	}
}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value streamer.Renderable
}

// Object is the JSON object producer. Member order is the stream order.
type Object struct {
	members []Member
}

// NewObject builds an object emitting members in the given order.
func NewObject(members ...Member) *Object {
	return &Object{members: members}
}

// Stream yields "{", the members separated per context options, "}".
func (o *Object) Stream(ctx streamer.Context) streamer.TokenStream {
	values := make([]streamer.TokenStream, len(o.members))
	for i, member := range o.members {
		values[i] = streamer.Concat(
			NewLiteral(member.Key).Stream(ctx),
			streamer.FromSlice(keySeparator(ctx)),
			member.Value.Stream(ctx),
		)
	}
	return containerStream(ctx, "{", "}", values)
}

// Array is the JSON array producer.
type Array struct {
	items []streamer.Renderable
}

// NewArray builds an array emitting items in the given order.
func NewArray(items ...streamer.Renderable) *Array {
	return &Array{items: items}
}

// Stream yields "[", the items separated per context options, "]".
func (a *Array) Stream(ctx streamer.Context) streamer.TokenStream {
	values := make([]streamer.TokenStream, len(a.items))
	for i, item := range a.items {
		values[i] = item.Stream(ctx)
	}
	return containerStream(ctx, "[", "]", values)
}

// containerStream lays out a container's inner streams. Compact mode splices
// everything onto one line; indented mode breaks after the opening delimiter,
// re-indents only the inner content (one insertion layer per nesting depth),
// and leaves the closing delimiter for the enclosing layer to indent.
func containerStream(ctx streamer.Context, open, close streamer.Token, values []streamer.TokenStream) streamer.TokenStream {
	if len(values) == 0 {
		return streamer.Tokens(open, close)
	}
	inner := streamer.Separated(itemSeparator(ctx), values...)
	unit, indented := indentUnit(ctx)
	if !indented {
		return streamer.Concat(streamer.Tokens(open), inner, streamer.Tokens(close))
	}
	return streamer.Concat(
		streamer.Tokens(open, streamer.LineBreak),
		streamer.Reindent(inner, unit),
		streamer.Tokens(streamer.LineBreak, close),
	)
}

// indentUnit resolves the indent option to a prefix string. Absent means
// compact output; an int means that many spaces (clamped at zero); a string
// is used verbatim. Other shapes are rejected by ValidateOptions and treated
// as absent here.
func indentUnit(ctx streamer.Context) (string, bool) {
	value, ok := ctx.Value(OptionIndent)
	if !ok {
		return "", false
	}
	switch v := value.(type) {
	case int:
		if v < 0 {
			v = 0
		}
		return strings.Repeat(" ", v), true
	case string:
		return v, true
	}
	return "", false
}

// itemSeparator builds the token sequence between container items: the
// configured separator (default "," plus a space in compact mode), followed
// by a line break whenever indentation is on.
func itemSeparator(ctx streamer.Context) []streamer.Token {
	_, indented := indentUnit(ctx)
	var sep []streamer.Token
	if base, ok := ctx.Value(OptionItemSeparator); ok {
		if s, isString := base.(string); isString {
			sep = append(sep, s)
		}
	} else {
		sep = append(sep, ",")
		if !indented {
			sep = append(sep, " ")
		}
	}
	if indented {
		sep = append(sep, streamer.LineBreak)
	}
	return sep
}

// keySeparator builds the token sequence between an object key and its value.
func keySeparator(ctx streamer.Context) []streamer.Token {
	if base, ok := ctx.Value(OptionKeySeparator); ok {
		if s, isString := base.(string); isString {
			return []streamer.Token{s}
		}
	}
	return []streamer.Token{":", " "}
}
