// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jscan implements a constant-memory lexical tokenizer for JSON.
//
// The tokenizer consumes a source buffer held fully in memory and reports
// one token per call, recording each token as a kind tag plus a half-open
// byte range into the buffer. It never builds a syntax tree and never
// allocates storage proportional to the size or depth of the document: the
// only mutable state it owns is a nesting stack whose capacity is fixed
// when the scanner is constructed (8 levels unless overridden).
//
// # Scanning
//
// Construct a Scanner from a byte slice and call its Next method to
// iterate over the input. Next advances to the next token and returns nil,
// or reports an error:
//
//	s, err := jscan.New(input)
//	if err != nil {
//	   log.Fatalf("Invalid input: %v", err)
//	}
//	for s.Next() == nil {
//	   log.Printf("Next token: %v %v", s.Kind(), s.Span())
//	}
//
// Next returns io.EOF once the single top-level value has been fully
// consumed and only whitespace remains. Any other error is terminal for
// the scan: the scanner does not resynchronize, and subsequent calls
// repeat the same error.
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// Token text is always a view into the caller's buffer, never a copy, so
// the buffer must outlive every span and Text slice derived from it.
//
// # Walking
//
// The Walk method maps the token stream onto the methods of a Handler,
// reporting the structure of the input as Begin/End events without
// retaining any of it:
//
//	if err := jscan.Walk(input, handler); err != nil {
//	   log.Fatalf("Walk failed: %v", err)
//	}
//
// # Checking
//
// The scanner enforces structural validity only: brackets must balance
// within the configured depth, and each token must be legal where it
// appears. It deliberately does not validate string escape sequences or
// number grammar; "\a" is an acceptable escape and "++-0EE" one number
// token. Callers that need lexical strictness must check token text
// themselves, for example with Unescape for strings.
package jscan
