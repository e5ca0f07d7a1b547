package sequence

import (
	"context"
	"fmt"
)

// CounterName is the single counter backing appointment codes.
const CounterName = "appointment_seq"

// Allocator hands out appointment sequence codes. Next is linearizable:
// concurrent callers always receive distinct codes. Gaps are fine,
// duplicates are not, and a code is never reused — not even after the
// appointment it belonged to is rejected.
type Allocator interface {
	Next(ctx context.Context) (string, error)
}

// Format renders the nth allocation as a sequence code. The +1 keeps
// codes aligned with the historical numbering, whose first booking was
// APP0002.
func Format(n int64) string {
	return fmt.Sprintf("APP%04d", n+1)
}
