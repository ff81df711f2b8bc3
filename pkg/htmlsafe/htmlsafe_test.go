package htmlsafe

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

func TestText_UGCKeepsFormatting(t *testing.T) {
	got := streamer.RenderString(Text(`<p>hi <b>there</b></p>`), nil)
	if got != `<p>hi <b>there</b></p>` {
		t.Fatalf("render = %q", got)
	}
}

func TestText_UGCStripsScripts(t *testing.T) {
	got := streamer.RenderString(Text(`<p>ok</p><script>alert(1)</script>`), nil)
	if strings.Contains(got, "script") {
		t.Fatalf("script survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>ok</p>") {
		t.Fatalf("benign markup lost: %q", got)
	}
}

func TestText_StrictPolicyStripsEverything(t *testing.T) {
	options := map[string]any{OptionPolicy: PolicyStrict}
	got := streamer.RenderString(Text(`<b>bold</b> text`), options)
	if got != "bold text" {
		t.Fatalf("render = %q, want %q", got, "bold text")
	}
}

func TestText_UnknownPolicyFallsBackToStrict(t *testing.T) {
	options := map[string]any{OptionPolicy: "nonsense"}
	got := streamer.RenderString(Text(`<b>bold</b>`), options)
	if got != "bold" {
		t.Fatalf("render = %q, want %q", got, "bold")
	}
}

func TestValidateOptions(t *testing.T) {
	cases := []struct {
		name    string
		options map[string]any
		wantErr bool
	}{
		{name: "unset", options: nil},
		{name: "ugc", options: map[string]any{OptionPolicy: PolicyUGC}},
		{name: "strict", options: map[string]any{OptionPolicy: PolicyStrict}},
		{name: "unknown name", options: map[string]any{OptionPolicy: "nonsense"}, wantErr: true},
		{name: "wrong shape", options: map[string]any{OptionPolicy: 3}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOptions(streamer.NewContext(tc.options))
			if tc.wantErr {
				var optErr *streamer.OptionError
				if !errors.As(err, &optErr) {
					t.Fatalf("error = %v, want OptionError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
