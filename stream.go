// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import "io"

// A Handler handles events from walking a token stream. If a method
// reports an error, the walk stops and that error is returned to the
// caller. The scanner ensures objects and arrays are correctly balanced
// before the corresponding events are delivered.
//
// Handler methods receive the token that triggered the event. The token is
// a span into the source buffer; use Token.Bytes against the same buffer
// to materialize its text.
type Handler interface {
	// Begin a new object, whose open brace is at tok.
	BeginObject(tok Token) error

	// End the most-recently-opened object, whose close brace is at tok.
	EndObject(tok Token) error

	// Begin a new array, whose open bracket is at tok.
	BeginArray(tok Token) error

	// End the most-recently-opened array, whose close bracket is at tok.
	EndArray(tok Token) error

	// Report an object key. The span of tok excludes the quotation marks
	// but its text is otherwise raw; use Unescape if the plain string is
	// required.
	Field(tok Token) error

	// Report a data value. The type of the value can be recovered from the
	// token kind. String spans exclude the quotation marks.
	Value(tok Token) error

	// EndOfInput reports the end of the input.
	EndOfInput()
}

// Walk scans src with the default nesting depth and delivers events to h
// until either an error occurs or the input is exhausted.
func Walk(src []byte, h Handler) error {
	s, err := New(src)
	if err != nil {
		return err
	}
	return s.Walk(h)
}

// Walk consumes the remaining tokens of s and delivers one event per
// structural element to h. Comma and colon tokens are consumed but not
// reported; they carry no structure of their own. If a handler method
// reports an error, the walk stops and that error is returned.
func (s *Scanner) Walk(h Handler) error {
	for {
		if err := s.Next(); err == io.EOF {
			h.EndOfInput()
			return nil
		} else if err != nil {
			return err
		}

		var err error
		switch tok := s.Token(); tok.Kind {
		case ObjectStart:
			err = h.BeginObject(tok)
		case ObjectEnd:
			err = h.EndObject(tok)
		case ArrayStart:
			err = h.BeginArray(tok)
		case ArrayEnd:
			err = h.EndArray(tok)
		case FieldName:
			err = h.Field(tok)
		case Comma, Colon:
			// separators are consumed silently
		default:
			err = h.Value(tok)
		}
		if err != nil {
			return err
		}
	}
}
