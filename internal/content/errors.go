package content

import (
	"errors"
	"fmt"
)

// ErrGeneration is the single failure class callers branch on: network
// failure, non-success status, timeout and parse failure all wrap it.
// Callers are not expected to distinguish sub-causes for control flow.
var ErrGeneration = errors.New("content generation failed")

// ErrTimeout and ErrParse refine ErrGeneration for logging. Both satisfy
// errors.Is(err, ErrGeneration).
var (
	ErrTimeout = fmt.Errorf("%w: deadline exceeded", ErrGeneration)
	ErrParse   = fmt.Errorf("%w: no parseable JSON in model output", ErrGeneration)
)
