package jscan

import "fmt"

// A Span describes a contiguous range of bytes in a source buffer, as a
// half-open interval: Pos is the offset of the first byte of the range, and
// End is the offset one past its last byte.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the number of bytes spanned.
func (s Span) Len() int { return s.End - s.Pos }

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Pos, s.End) }
