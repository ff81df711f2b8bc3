// Package htmlsafe provides a leaf producer for untrusted HTML fragments.
// The markup is sanitized through a bluemonday policy before it ever reaches
// the token stream, so a producer tree can safely embed user-generated
// content next to trusted literals.
package htmlsafe

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-wordstream/pkg/streamer"
)

// OptionPolicy selects the sanitization policy by name. Recognized values
// are PolicyUGC (the default) and PolicyStrict.
const OptionPolicy = "html_policy"

// Policy names accepted by OptionPolicy.
const (
	// PolicyUGC keeps the markup user-generated content commonly needs:
	// formatting, links, images.
	PolicyUGC = "ugc"
	// PolicyStrict strips every element and attribute, leaving text only.
	PolicyStrict = "strict"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// Text is a leaf producer carrying an untrusted markup fragment.
type Text string

// Stream sanitizes the fragment under the context-selected policy and yields
// the clean markup as a single token. An unrecognized policy name falls back
// to PolicyStrict: when the caller's intent is unclear, stripping everything
// is the only output that cannot widen exposure. ValidateOptions reports the
// bad name to callers that check up front.
func (t Text) Stream(ctx streamer.Context) streamer.TokenStream {
	return streamer.Tokens(policyFor(ctx).Sanitize(string(t)))
}

func policyFor(ctx streamer.Context) *bluemonday.Policy {
	name, err := streamer.StringOption(ctx, OptionPolicy, PolicyUGC)
	if err != nil || name != PolicyUGC {
		return strictPolicy
	}
	return ugcPolicy
}

// ValidateOptions rejects unknown policy names before rendering starts.
func ValidateOptions(ctx streamer.Context) error {
	name, err := streamer.StringOption(ctx, OptionPolicy, PolicyUGC)
	if err != nil {
		return err
	}
	if name != PolicyUGC && name != PolicyStrict {
		return &streamer.OptionError{Option: OptionPolicy, Value: name, Want: `"ugc" or "strict"`}
	}
	return nil
}
