// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan_test

import (
	"testing"

	"github.com/creachadair/jscan"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", `""`},
		{" ", `" "`},
		{"a\t\nb", `"a\t\nb"`},
		{"\x00\x01\x02", `"\u0000\u0001\u0002"`},
		{`a "b c\" d"`, `"a \"b c\\\" d\""`},
		{`\ufffd`, `"\\ufffd"`},
		{"\u2028 \u2029 \ufffd", `"\u2028 \u2029 \ufffd"`},
		{"This is the end\v", `"This is the end\u000b"`},
		{"<\x1e>", `"<\u001e>"`},
	}
	for _, test := range tests {
		got := jscan.Quote(test.input)
		if got != test.want {
			t.Errorf("Input: %#q\nGot:  %#q\nWant: %#q", test.input, got, test.want)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},                     // empty string body
		{`ok go`, "ok go", false},           // plain text
		{`abc\ndef`, "abc\ndef", false},     // C escapes
		{`\tabc\n`, "\tabc\n", false},       // C escapes
		{`\b\f\n\r\t`, "\b\f\n\r\t", false}, // C escapes
		{`a \u0026 b`, "a & b", false},      // short Unicode escape
		{`\u`, ``, true},                    // incomplete Unicode escape
		{`\u00`, ``, true},                  // incomplete Unicode escape
		{`\u00x9`, "\ufffd", false},         // invalid Unicode escape
		{`\u019 `, "\ufffd", false},         // invalid Unicode escape
		{`a\"b`, `a"b`, false},              // escaped quote
		{`a\\b\\cd`, `a\b\cd`, false},       // escaped backslashes
		{`trailing\`, ``, true},             // incomplete escape sequence
		{`\a`, "\ufffd", false},             // unknown escape
	}

	for _, test := range tests {
		got, err := jscan.Unescape([]byte(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unescape(%#q): got %v, want no error", test.input, err)
			}
			continue
		} else if test.fail {
			t.Errorf("Unescape(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unescape(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
