package streamer

import "fmt"

// Context is the shared, read-only configuration passed to every producer
// within one render call. It is built once by the Renderer and never mutated
// mid-render. The core imposes no recognized option names; individual
// producers define and consume their own.
//
// A nil stored value counts as unset: options maps routinely carry nil
// entries for settings the caller left alone, and producers must not be able
// to observe a difference between "missing key" and "key set to nil".
type Context struct {
	options map[string]any
}

// NewContext builds a context from a plain options map. The map is copied so
// later caller mutations cannot leak into an in-flight render.
func NewContext(options map[string]any) Context {
	if len(options) == 0 {
		return Context{}
	}
	copied := make(map[string]any, len(options))
	for key, value := range options {
		copied[key] = value
	}
	return Context{options: copied}
}

// Value returns the configured value for key. The second return reports
// whether the option was set: lookups of unset options never fail, they
// report ok=false. An explicitly configured falsy value (false, 0, "") is
// set, and is returned as-is with ok=true.
func (c Context) Value(key string) (any, bool) {
	value, ok := c.options[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Default returns the configured value for key, or fallback when the option
// is unset. Explicit falsy values pass through untouched, so an option with a
// true default can still be switched off.
func (c Context) Default(key string, fallback any) any {
	value, ok := c.Value(key)
	if !ok {
		return fallback
	}
	return value
}

// OptionError reports a configured option whose value has the wrong shape for
// the producer consuming it.
type OptionError struct {
	Option string
	Value  any
	Want   string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("streamer: option %q: want %s, got %T", e.Option, e.Want, e.Value)
}

// BoolOption reads a boolean option, returning fallback when unset and an
// OptionError when the option is set to a non-boolean value.
func BoolOption(c Context, key string, fallback bool) (bool, error) {
	value, ok := c.Value(key)
	if !ok {
		return fallback, nil
	}
	b, ok := value.(bool)
	if !ok {
		return fallback, &OptionError{Option: key, Value: value, Want: "bool"}
	}
	return b, nil
}

// StringOption reads a string option, returning fallback when unset and an
// OptionError when the option is set to a non-string value.
func StringOption(c Context, key string, fallback string) (string, error) {
	value, ok := c.Value(key)
	if !ok {
		return fallback, nil
	}
	s, ok := value.(string)
	if !ok {
		return fallback, &OptionError{Option: key, Value: value, Want: "string"}
	}
	return s, nil
}

// IntOption reads an integer option, returning fallback when unset and an
// OptionError when the option is set to a non-integer value.
func IntOption(c Context, key string, fallback int) (int, error) {
	value, ok := c.Value(key)
	if !ok {
		return fallback, nil
	}
	switch n := value.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return fallback, &OptionError{Option: key, Value: value, Want: "int"}
	}
}
