// Command wordstream-cli reads a YAML or JSON document and re-renders it as
// JSON through the wordstream producer pipeline. It exists as a working
// demonstration of the library; the core stays free of any I/O.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-wordstream/pkg/jsonenc"
)

func main() {
	source := flag.String("source", "", "input document path (YAML or JSON)")
	indent := flag.String("indent", "", "indent per level: a number of spaces or a literal prefix")
	ensureASCII := flag.Bool("ensure-ascii", true, "escape non-ASCII characters")
	itemSep := flag.String("item-separator", "", "override the separator between items")
	keySep := flag.String("key-separator", "", "override the separator between keys and values")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for render options")
	verbose := flag.Bool("verbose", false, "log progress to stderr")
	flag.Parse()

	logger := newLogger(*verbose)

	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(*source)
	if err != nil {
		logger.Fatal().Err(err).Str("source", *source).Msg("read input")
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		logger.Fatal().Err(err).Str("source", *source).Msg("decode input")
	}
	logger.Debug().Int("bytes", len(raw)).Msg("input decoded")

	if *interactive {
		if err := promptOptions(indent, ensureASCII); err != nil {
			logger.Fatal().Err(err).Msg("prompt options")
		}
	}

	options := buildOptions(*indent, *ensureASCII, *itemSep, *keySep)

	rendered, err := jsonenc.Marshal(doc, options...)
	if err != nil {
		logger.Fatal().Err(err).Msg("render document")
	}
	logger.Debug().Int("chars", len(rendered)).Msg("document rendered")

	if *output != "" {
		if err := os.WriteFile(*output, []byte(rendered+"\n"), 0o644); err != nil {
			logger.Fatal().Err(err).Str("output", *output).Msg("write output")
		}
		logger.Info().Str("output", *output).Msg("document written")
		return
	}
	fmt.Println(rendered)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// buildOptions maps CLI flags onto jsonenc options. An -indent value that
// parses as an integer means that many spaces; anything else is used as a
// literal prefix.
func buildOptions(indent string, ensureASCII bool, itemSep, keySep string) []jsonenc.Option {
	options := []jsonenc.Option{jsonenc.WithEnsureASCII(ensureASCII)}
	if indent != "" {
		if n, err := strconv.Atoi(indent); err == nil {
			options = append(options, jsonenc.WithIndent(n))
		} else {
			options = append(options, jsonenc.WithIndentString(indent))
		}
	}
	if itemSep != "" || keySep != "" {
		options = append(options, jsonenc.WithSeparators(itemSep, keySep))
	}
	return options
}

func promptOptions(indent *string, ensureASCII *bool) error {
	questions := []*survey.Question{
		{
			Name:   "indent",
			Prompt: &survey.Input{Message: "Indent (spaces count or literal prefix, empty for compact):", Default: *indent},
		},
		{
			Name:   "ensureAscii",
			Prompt: &survey.Confirm{Message: "Escape non-ASCII characters?", Default: *ensureASCII},
		},
	}
	answers := struct {
		Indent      string
		EnsureAscii bool
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	*indent = answers.Indent
	*ensureASCII = answers.EnsureAscii
	return nil
}
