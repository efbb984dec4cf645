// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"github.com/creachadair/jscan/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return `"` + string(escape.Quote(mem.S(src))) + `"` }

// Unescape decodes the contents of a JSON string token. The input must
// have the enclosing quotation marks already removed, which is exactly the
// shape (*Scanner).Text reports for String and FieldName tokens.
//
// Escape sequences are replaced with their unescaped equivalents. Invalid
// escapes are replaced by the Unicode replacement rune. Unescape reports
// an error for an incomplete escape sequence.
func Unescape(src []byte) ([]byte, error) { return escape.Unquote(mem.B(src)) }
