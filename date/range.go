package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, in whatever order they are given.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// Days returns the number of calendar days covered by the range, boundaries included.
func (r Range) Days() int {
	return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1
}

func (r Range) String() string {
	if r.From == r.To {
		return r.From.String()
	}
	return fmt.Sprintf("%s to %s", r.From, r.To)
}
