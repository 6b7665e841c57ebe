package koch

import (
	"errors"
	"fmt"
)

// ErrInvalidDepth is matched by every [InvalidDepthError] via [errors.Is].
var ErrInvalidDepth = errors.New("koch: invalid depth")

// InvalidDepthError is returned when a generator is asked for a negative
// recursion depth. No partial curve is produced.
type InvalidDepthError struct {
	Depth int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("koch: invalid depth %d, must be non-negative", e.Depth)
}

func (e *InvalidDepthError) Is(target error) bool {
	return target == ErrInvalidDepth
}

// ValidateDepth returns an [*InvalidDepthError] if depth is negative.
func ValidateDepth(depth int) error {
	if depth < 0 {
		return &InvalidDepthError{Depth: depth}
	}
	return nil
}
