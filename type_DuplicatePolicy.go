package stocks

import "fmt"

// DuplicatePolicy defines what Pivot does when the same (Date, Ticker) pair appears more than once.
type DuplicatePolicy int

const (
	// DuplicateError fails the pivot with ErrDuplicateKey.
	DuplicateError DuplicatePolicy = iota
	// DuplicateKeepLast keeps the value of the last row in input order.
	DuplicateKeepLast
)

func (p DuplicatePolicy) String() string {
	switch p {
	case DuplicateError:
		return "error"
	case DuplicateKeepLast:
		return "last"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy parses a string into a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "error":
		return DuplicateError, nil
	case "last":
		return DuplicateKeepLast, nil
	default:
		return 0, fmt.Errorf("unknown duplicate policy: %q", s)
	}
}
