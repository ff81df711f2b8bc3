package streamer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// optionAware reads one option through default resolution, mirroring how
// format producers consume their configuration.
type optionAware struct{}

func (optionAware) Stream(ctx Context) TokenStream {
	label := ctx.Default("label", "what").(string)
	toks := []Token{label}
	if funny, _ := BoolOption(ctx, "is_funny", false); funny {
		toks = append(toks, ")")
	}
	return FromSlice(toks)
}

func TestRenderer_RoundTrip(t *testing.T) {
	const text = "test123"
	r := New(nil)

	if got := r.RenderString(Chars(text)); got != text {
		t.Fatalf("RenderString = %q, want %q", got, text)
	}
	if got := r.RenderBytes(Chars(text)); !bytes.Equal(got, []byte(text)) {
		t.Fatalf("RenderBytes = %q, want %q", got, text)
	}
}

// Every materialization view of the same producer concatenates to the same
// output, regardless of the producer's token granularity.
func TestRenderer_GranularityInvariance(t *testing.T) {
	producers := []struct {
		name string
		root Renderable
	}{
		{name: "single token leaf", root: Literal("héllo ☃ world")},
		{name: "per-rune leaf", root: Chars("héllo ☃ world")},
		{name: "composite", root: Group{Literal("a"), Chars("bc"), Literal("")}},
	}

	for _, tc := range producers {
		t.Run(tc.name, func(t *testing.T) {
			r := New(nil)
			want := r.RenderString(tc.root)

			if got := strings.Join(Drain(r.Stream(tc.root)), ""); got != want {
				t.Fatalf("raw stream concat = %q, want %q", got, want)
			}
			if got := strings.Join(Drain(r.RuneStream(tc.root)), ""); got != want {
				t.Fatalf("rune stream concat = %q, want %q", got, want)
			}

			read, err := io.ReadAll(r.Reader(tc.root))
			if err != nil {
				t.Fatalf("reader failed: %v", err)
			}
			if string(read) != want {
				t.Fatalf("reader concat = %q, want %q", read, want)
			}
		})
	}
}

func TestRenderer_RuneStreamYieldsSingleRunes(t *testing.T) {
	r := New(nil)
	got := Drain(r.RuneStream(Literal("ab☃")))
	if diff := cmp.Diff([]Token{"a", "b", "☃"}, got); diff != "" {
		t.Fatalf("unexpected runes (-want +got):\n%s", diff)
	}
}

func TestRenderer_ReaderSmallBuffer(t *testing.T) {
	r := New(nil)
	reader := r.Reader(Literal("☃x"))

	var out []byte
	buf := make([]byte, 1)
	for {
		n, err := reader.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
	}
	if string(out) != "☃x" {
		t.Fatalf("byte-at-a-time read = %q", out)
	}
}

func TestRenderer_ContextDefaults(t *testing.T) {
	cases := []struct {
		name    string
		options map[string]any
		want    string
	}{
		{name: "unset uses fallback", options: nil, want: "what"},
		{name: "explicit fallback value matches unset", options: map[string]any{"label": "what"}, want: "what"},
		{name: "configured value wins", options: map[string]any{"label": "123"}, want: "123"},
		{name: "flag option", options: map[string]any{"is_funny": true}, want: "what)"},
		{name: "both", options: map[string]any{"label": "2384", "is_funny": true}, want: "2384)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RenderString(optionAware{}, tc.options); got != tc.want {
				t.Fatalf("render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderString_ShortcutMatchesExplicitDriver(t *testing.T) {
	root := Group{Literal("a"), Literal("b")}
	if RenderString(root, nil) != New(nil).RenderString(root) {
		t.Fatal("shortcut and explicit driver disagree")
	}
}
