package timelane

import (
	"errors"
	"fmt"
)

// OverflowError reports that a conversion left the representable mark
// range. It is the only computational failure mode: overflow is detected
// at the hop where it occurs and propagated immediately, never saturated
// or wrapped.
type OverflowError struct {
	// Op is the conversion step that overflowed. Compression always
	// shrinks magnitudes, so in practice only "expand" occurs.
	Op string

	// From and To identify the adjacent lane pair of the failing hop.
	From Lane
	To   Lane

	// Mark is the value fed to the failing hop.
	Mark Mark
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("mark overflow: %s %s mark %d to %s", e.Op, e.From, int64(e.Mark), e.To)
}

// IsOverflow returns true if the error is a mark overflow.
// Uses errors.As to handle wrapped errors.
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

func expandOverflow(m Mark, from, to Lane) error {
	return &OverflowError{Op: "expand", From: from, To: to, Mark: m}
}
