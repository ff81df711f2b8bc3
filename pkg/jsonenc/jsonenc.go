// Package jsonenc renders Go values as JSON through the streamer contract.
// It is a consumer of the core, not part of it: every value becomes a
// producer tree at construction time, and all layout decisions (pretty
// printing, separators, ASCII escaping) are read from the render context.
//
// Recognized options: OptionEnsureASCII (bool, default true), OptionIndent
// (int or string, default none), OptionItemSeparator and OptionKeySeparator
// (strings). Option shapes are checked by ValidateOptions before rendering;
// Marshal does this for you.
package jsonenc

import (
	"fmt"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// Option names consumed by the JSON producers.
const (
	OptionEnsureASCII   = "ensure_ascii"
	OptionIndent        = "indent"
	OptionItemSeparator = "item_separator"
	OptionKeySeparator  = "key_separator"
)

// Option configures a Marshal call.
type Option func(map[string]any)

// WithEnsureASCII controls escaping of non-ASCII characters. The default is
// true; pass false to emit non-ASCII text verbatim.
func WithEnsureASCII(enabled bool) Option {
	return func(options map[string]any) {
		options[OptionEnsureASCII] = enabled
	}
}

// WithIndent enables pretty printing with n spaces per nesting level.
// Negative values clamp to zero.
func WithIndent(n int) Option {
	return func(options map[string]any) {
		options[OptionIndent] = n
	}
}

// WithIndentString enables pretty printing with an explicit indent unit, such
// as a tab. The empty string keeps the line structure without any prefix.
func WithIndentString(unit string) Option {
	return func(options map[string]any) {
		options[OptionIndent] = unit
	}
}

// WithSeparators overrides the item and key separators, mirroring the
// separators knob of encoders in other ecosystems. Empty strings keep the
// respective default.
func WithSeparators(item, key string) Option {
	return func(options map[string]any) {
		if item != "" {
			options[OptionItemSeparator] = item
		}
		if key != "" {
			options[OptionKeySeparator] = key
		}
	}
}

// Marshal renders value as a JSON string. The producer tree is built first,
// so unsupported input types fail here, before any streaming happens.
func Marshal(value any, options ...Option) (string, error) {
	renderable, err := ToRenderable(value)
	if err != nil {
		return "", err
	}
	settings := make(map[string]any)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(settings)
	}
	if err := ValidateOptions(streamer.NewContext(settings)); err != nil {
		return "", err
	}
	return streamer.RenderString(renderable, settings), nil
}

// ValidateOptions rejects option values of unexpected shape. Token streams
// are pure transformation with no error channel, so shape checking happens
// here, at the render entry point, never silently mid-stream.
func ValidateOptions(ctx streamer.Context) error {
	if _, err := streamer.BoolOption(ctx, OptionEnsureASCII, true); err != nil {
		return err
	}
	if value, ok := ctx.Value(OptionIndent); ok {
		switch value.(type) {
		case int, string:
		default:
			return &streamer.OptionError{Option: OptionIndent, Value: value, Want: "int or string"}
		}
	}
	if _, err := streamer.StringOption(ctx, OptionItemSeparator, ""); err != nil {
		return err
	}
	if _, err := streamer.StringOption(ctx, OptionKeySeparator, ""); err != nil {
		return err
	}
	return nil
}

// UnsupportedTypeError reports an input value that cannot be mapped to any
// JSON producer.
type UnsupportedTypeError struct {
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("jsonenc: unsupported type %T", e.Value)
}
