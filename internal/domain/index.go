package domain

import "fmt"

// Index points into a displayed list. Users see one-based numbers; code
// works with zero-based offsets.
type Index struct {
	zeroBased int
}

// IndexFromOneBased converts a user-facing number.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n - 1}, nil
}

// IndexFromZeroBased converts an offset.
func IndexFromZeroBased(n int) (Index, error) {
	if n < 0 {
		return Index{}, ErrInvalidIndex
	}
	return Index{zeroBased: n}, nil
}

// ZeroBased returns the offset.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the user-facing number.
func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }
