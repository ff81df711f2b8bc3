package main

import (
	"testing"

	"github.com/goliatone/go-wordstream/pkg/jsonenc"
)

func marshalWith(t *testing.T, value any, options []jsonenc.Option) string {
	t.Helper()
	out, err := jsonenc.Marshal(value, options...)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return out
}

func TestBuildOptions(t *testing.T) {
	value := map[string]any{"a": []any{1, 2}}

	cases := []struct {
		name    string
		indent  string
		itemSep string
		keySep  string
		want    string
	}{
		{
			name: "compact by default",
			want: `{"a": [1, 2]}`,
		},
		{
			name:   "numeric indent means spaces",
			indent: "2",
			want:   "{\n  \"a\": [\n    1,\n    2\n  ]\n}",
		},
		{
			name:   "non-numeric indent is a literal prefix",
			indent: "\t",
			want:   "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t]\n}",
		},
		{
			name:    "custom separators",
			itemSep: ",",
			keySep:  ":",
			want:    `{"a":[1,2]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			options := buildOptions(tc.indent, true, tc.itemSep, tc.keySep)
			if got := marshalWith(t, value, options); got != tc.want {
				t.Fatalf("render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildOptions_EnsureASCII(t *testing.T) {
	options := buildOptions("", true, "", "")
	if got := marshalWith(t, "héllo", options); got != `"h\u00e9llo"` {
		t.Fatalf("escaped render = %q", got)
	}

	options = buildOptions("", false, "", "")
	if got := marshalWith(t, "héllo", options); got != `"héllo"` {
		t.Fatalf("verbatim render = %q", got)
	}
}
