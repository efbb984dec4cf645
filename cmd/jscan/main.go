// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jscan tokenizes a JSON document and prints one line per token.
//
// The scanner itself lives in the jscan package; this driver only handles
// file reading and output formatting.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/creachadair/jscan"
	"github.com/creachadair/mds/mapset"
	"github.com/tailscale/hujson"
)

var (
	punctStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
	stringStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	fieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	constStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
)

type flags struct {
	Path    string `arg:"" optional:"" type:"existingfile" help:"Input file (reads stdin if omitted)"`
	Depth   int    `default:"8" help:"Maximum permitted nesting depth"`
	Only    string `placeholder:"KINDS" help:"Print only these token kinds (comma-separated, e.g. number,string)"`
	Relaxed bool   `help:"Standardize comments and trailing commas away before scanning"`
	Plain   bool   `help:"Disable styled output"`
}

func main() {
	var cli flags
	ctx := kong.Parse(&cli,
		kong.Name("jscan"),
		kong.Description("A constant-memory JSON tokenizer."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

func (f *flags) Run() error {
	src, err := f.readSource()
	if err != nil {
		return err
	}
	if f.Relaxed {
		std, err := hujson.Standardize(src)
		if err != nil {
			return fmt.Errorf("standardize input: %w", err)
		}
		src = std
	}

	only := mapset.New[string]()
	for _, name := range strings.Split(f.Only, ",") {
		if t := strings.TrimSpace(name); t != "" {
			only.Add(t)
		}
	}

	s, err := jscan.NewWithDepth(src, f.Depth)
	if err != nil {
		return err
	}

	for i := 0; ; i++ {
		if err := s.Next(); err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		tok := s.Token()
		if !only.IsEmpty() && !only.Has(kindName(tok.Kind)) {
			continue
		}
		fmt.Printf("%3d %-12s %9v  %s\n", i, kindName(tok.Kind), tok.Span, f.render(tok.Kind, s.Text()))
	}
}

func (f *flags) readSource() ([]byte, error) {
	if f.Path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(f.Path)
}

func (f *flags) render(k jscan.Kind, text []byte) string {
	s := string(text)
	if len(s) > 64 {
		s = s[:61] + "..."
	}
	if f.Plain {
		return s
	}
	return styleFor(k).Render(s)
}

func styleFor(k jscan.Kind) lipgloss.Style {
	switch k {
	case jscan.String:
		return stringStyle
	case jscan.FieldName:
		return fieldStyle
	case jscan.Number:
		return numberStyle
	case jscan.True, jscan.False, jscan.Null:
		return constStyle
	default:
		return punctStyle
	}
}

// kindName maps a kind to the bare name used for filtering and display,
// without the quotation marks Kind.String puts around punctuation.
func kindName(k jscan.Kind) string {
	switch k {
	case jscan.ObjectStart:
		return "object-start"
	case jscan.ObjectEnd:
		return "object-end"
	case jscan.ArrayStart:
		return "array-start"
	case jscan.ArrayEnd:
		return "array-end"
	case jscan.Comma:
		return "comma"
	case jscan.Colon:
		return "colon"
	case jscan.Number:
		return "number"
	case jscan.String:
		return "string"
	case jscan.FieldName:
		return "field-name"
	case jscan.True:
		return "true"
	case jscan.False:
		return "false"
	case jscan.Null:
		return "null"
	}
	return "invalid"
}
