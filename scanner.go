// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go4.org/mem"
)

// A Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	ObjectStart         // left brace "{"
	ObjectEnd           // right brace "}"
	ArrayStart          // left square bracket "["
	ArrayEnd            // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	Number              // number literal
	String              // quoted string value
	FieldName           // quoted object key
	True                // constant: true
	False               // constant: false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	ObjectStart: `"{"`,
	ObjectEnd:   `"}"`,
	ArrayStart:  `"["`,
	ArrayEnd:    `"]"`,
	Comma:       `","`,
	Colon:       `":"`,
	Number:      "number",
	String:      "string",
	FieldName:   "field name",
	True:        "true",
	False:       "false",
	Null:        "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// IsValue reports whether k can begin a JSON value.
func (k Kind) IsValue() bool {
	switch k {
	case Number, String, True, False, Null, ArrayStart, ObjectStart:
		return true
	}
	return false
}

// A Token records the kind and position of a single lexical token. The
// span addresses the source buffer the token was scanned from; the token
// itself holds no text.
//
// For String and FieldName tokens the span excludes the enclosing
// quotation marks.
type Token struct {
	Kind Kind
	Span
}

// Bytes returns the raw text of t as a view into src, which must be the
// buffer t was scanned from. The view is valid only as long as src.
func (t Token) Bytes(src []byte) []byte { return src[t.Pos:t.End] }

// DefaultMaxDepth is the nesting capacity of scanners built by New.
const DefaultMaxDepth = 8

// Errors reported by a Scanner. Errors returned from Next carry the byte
// offset at which the condition was detected; use errors.Is to match them
// against these values. End-of-input conditions are reported with the
// standard io errors: Next returns io.EOF after the document is complete,
// and io.ErrUnexpectedEOF if the input ends inside a token or with
// structure still open.
var (
	ErrNilSource       = errors.New("no source buffer")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingData    = errors.New("trailing data after value")
	ErrDepthExceeded   = errors.New("maximum nesting depth exceeded")
	ErrCorruptedState  = errors.New("scanner state corrupted")
)

// A state names the set of token kinds that may legally begin at the
// current position. Several states admit more than one kind; the scanner
// tracks each such union as a single named state so that dispatch on it
// stays exhaustive.
type state byte

const (
	stateValue state = iota // any value
	stateValueOrArrayEnd    // value or "]", after "["
	stateKeyOrObjectEnd     // field name or "}", after "{"
	stateKey                // field name, after "," inside an object
	stateColon              // ":", after a field name
	stateCommaOrObjectEnd   // "," or "}", after an object member
	stateCommaOrArrayEnd    // "," or "]", after an array element
	stateDone               // complete document, nothing may follow
)

var stateStr = [...]string{
	stateValue:            "value",
	stateValueOrArrayEnd:  `value or "]"`,
	stateKeyOrObjectEnd:   `field name or "}"`,
	stateKey:              "field name",
	stateColon:            `":"`,
	stateCommaOrObjectEnd: `"," or "}"`,
	stateCommaOrArrayEnd:  `"," or "]"`,
	stateDone:             "end of input",
}

func (st state) String() string { return stateStr[st] }

// allows reports whether a token of kind k may begin in st.
func (st state) allows(k Kind) bool {
	switch st {
	case stateValue:
		return k.IsValue()
	case stateValueOrArrayEnd:
		return k.IsValue() || k == ArrayEnd
	case stateKeyOrObjectEnd:
		return k == FieldName || k == ObjectEnd
	case stateKey:
		return k == FieldName
	case stateColon:
		return k == Colon
	case stateCommaOrObjectEnd:
		return k == Comma || k == ObjectEnd
	case stateCommaOrArrayEnd:
		return k == Comma || k == ArrayEnd
	default:
		return false
	}
}

// A frame marks whether the innermost open structure is an object or an
// array.
type frame byte

const (
	inObject frame = iota
	inArray
)

// A Scanner reads lexical tokens from a JSON source buffer held fully in
// memory. Each call to Next advances the scanner to the next token, or
// reports an error. The scanner allocates no storage after construction:
// its only mutable state beyond a few scalars is a nesting stack whose
// capacity is fixed when the scanner is created.
//
// The scanner checks structure (brackets balance, tokens appear in legal
// order) but not lexical detail: escape sequences inside strings and the
// digit grammar of numbers are accepted unchecked.
//
// A Scanner is owned by a single caller. Sharing one scanner between
// goroutines without external locking is not supported.
type Scanner struct {
	src   []byte
	pos   int
	stack []frame // capacity fixed at construction
	st    state
	tok   Token
	err   error
}

// New constructs a scanner for src with the default maximum nesting depth.
// The scanner retains src but never copies or modifies it; src must remain
// valid and unmodified for as long as the scanner and any token spans
// derived from it are in use.
func New(src []byte) (*Scanner, error) { return NewWithDepth(src, DefaultMaxDepth) }

// NewWithDepth constructs a scanner for src whose nesting stack holds at
// most maxDepth open objects and arrays. It reports ErrNilSource if src is
// nil. An empty non-nil buffer is accepted here; scanning it fails with
// io.ErrUnexpectedEOF, since a document must contain at least one value.
func NewWithDepth(src []byte, maxDepth int) (*Scanner, error) {
	if src == nil {
		return nil, ErrNilSource
	} else if maxDepth < 1 {
		return nil, fmt.Errorf("invalid maximum depth %d", maxDepth)
	}
	return &Scanner{src: src, stack: make([]frame, 0, maxDepth), st: stateValue}, nil
}

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
//
// Any error other than io.EOF is terminal: the scanner does not
// resynchronize, every subsequent call returns the same error, and the
// caller must construct a new scanner to scan again.
func (s *Scanner) Next() error {
	if s == nil || s.src == nil {
		return ErrCorruptedState
	}
	if s.err != nil && s.err != io.EOF {
		return s.err
	}
	s.tok = Token{}

	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}

	if s.st == stateDone {
		if s.pos == len(s.src) {
			return s.setErr(io.EOF)
		}
		return s.fail(ErrTrailingData)
	}
	if s.pos == len(s.src) {
		return s.fail(io.ErrUnexpectedEOF)
	}

	switch ch := s.src[s.pos]; {
	case ch == '{':
		return s.openFrame(ObjectStart, inObject, stateKeyOrObjectEnd)
	case ch == '[':
		return s.openFrame(ArrayStart, inArray, stateValueOrArrayEnd)
	case ch == '}':
		return s.closeFrame(ObjectEnd)
	case ch == ']':
		return s.closeFrame(ArrayEnd)
	case ch == ':':
		return s.punct(Colon, stateValue)
	case ch == ',':
		return s.punct(Comma, s.afterComma())
	case ch == '"':
		return s.scanString()
	case isNumberByte(ch):
		return s.scanNumber()
	case ch == 't':
		return s.scanLiteral(True, "true")
	case ch == 'f':
		return s.scanLiteral(False, "false")
	case ch == 'n':
		return s.scanLiteral(Null, "null")
	default:
		return s.failf(ErrUnexpectedToken, "got %q, want %s", ch, s.st)
	}
}

// Token returns the kind and span of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Kind returns the kind of the current token.
func (s *Scanner) Kind() Kind { return s.tok.Kind }

// Span returns the span of the current token in the source buffer.
func (s *Scanner) Span() Span { return s.tok.Span }

// Text returns the raw text of the current token as a view into the source
// buffer. For String and FieldName tokens the view excludes the enclosing
// quotation marks. The view aliases the source: it remains valid exactly
// as long as the buffer given to New, and must be copied if it is needed
// after the buffer is released or modified.
func (s *Scanner) Text() []byte { return s.tok.Bytes(s.src) }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Depth reports the number of objects and arrays currently open.
func (s *Scanner) Depth() int { return len(s.stack) }

func (s *Scanner) openFrame(k Kind, f frame, next state) error {
	if !s.st.allows(k) {
		return s.unexpected(k)
	}
	if len(s.stack) == cap(s.stack) {
		// Report without consuming, so the offset names the offending
		// bracket and no token is emitted for it.
		return s.fail(ErrDepthExceeded)
	}
	s.stack = append(s.stack, f)
	s.emit(k, s.pos, s.pos+1)
	s.pos++
	s.st = next
	return nil
}

func (s *Scanner) closeFrame(k Kind) error {
	if !s.st.allows(k) {
		return s.unexpected(k)
	}
	if len(s.stack) == 0 {
		return s.fail(ErrCorruptedState)
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.emit(k, s.pos, s.pos+1)
	s.pos++
	s.st = s.afterValue()
	return nil
}

func (s *Scanner) punct(k Kind, next state) error {
	if !s.st.allows(k) {
		return s.unexpected(k)
	}
	s.emit(k, s.pos, s.pos+1)
	s.pos++
	s.st = next
	return nil
}

func (s *Scanner) scanString() error {
	kind := String
	if s.st.allows(FieldName) {
		kind = FieldName
	} else if !s.st.allows(String) {
		return s.unexpected(String)
	}

	// Find the closing quote. A backslash escapes the byte after it, so an
	// escaped quote cannot terminate the scan; no other judgment is passed
	// on the escape.
	i := s.pos + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '"':
			s.emit(kind, s.pos+1, i)
			s.pos = i + 1
			if kind == FieldName {
				s.st = stateColon
			} else {
				s.st = s.afterValue()
			}
			return nil
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return s.fail(io.ErrUnexpectedEOF)
}

func (s *Scanner) scanNumber() error {
	if !s.st.allows(Number) {
		return s.unexpected(Number)
	}
	i := s.pos + 1
	for i < len(s.src) && isNumberByte(s.src[i]) {
		i++
	}
	s.emit(Number, s.pos, i)
	s.pos = i
	s.st = s.afterValue()
	return nil
}

func (s *Scanner) scanLiteral(k Kind, text string) error {
	if !s.st.allows(k) {
		return s.unexpected(k)
	}
	end := s.pos + len(text)
	if end > len(s.src) || !mem.B(s.src[s.pos:end]).Equal(mem.S(text)) {
		return s.failf(ErrUnexpectedToken, "unknown constant %q", s.src[s.pos:min(end, len(s.src))])
	}
	s.emit(k, s.pos, end)
	s.pos = end
	s.st = s.afterValue()
	return nil
}

func (s *Scanner) emit(k Kind, pos, end int) {
	s.tok = Token{Kind: k, Span: Span{Pos: pos, End: end}}
}

// afterValue returns the state that follows a completed value at the
// current nesting: a separator or the matching close bracket, or stateDone
// at top level.
func (s *Scanner) afterValue() state {
	if len(s.stack) == 0 {
		return stateDone
	}
	if s.stack[len(s.stack)-1] == inObject {
		return stateCommaOrObjectEnd
	}
	return stateCommaOrArrayEnd
}

// afterComma returns the state that follows a separator: a field name
// inside an object, any value inside an array.
func (s *Scanner) afterComma() state {
	if len(s.stack) != 0 && s.stack[len(s.stack)-1] == inObject {
		return stateKey
	}
	return stateValue
}

func (s *Scanner) unexpected(k Kind) error {
	return s.failf(ErrUnexpectedToken, "got %s, want %s", k, s.st)
}

// A posError couples an error with the byte offset at which it was
// detected.
type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

func (s *Scanner) fail(err error) error {
	return s.setErr(posError{s.pos, err})
}

func (s *Scanner) failf(base error, msg string, args ...any) error {
	return s.setErr(posError{s.pos, fmt.Errorf("%w: %s", base, fmt.Sprintf(msg, args...))})
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

// numberBytes is the set of bytes that may occur in a number token. Any
// contiguous run of them is accepted as one number; digit grouping, sign
// placement, and exponent syntax are not checked here.
const numberBytes = "0123456789-+eE."

func isNumberByte(ch byte) bool { return strings.IndexByte(numberBytes, ch) >= 0 }
