package chaos

import "errors"

// Domain errors for map and generator arguments. Packages building on
// chaos wrap these with the offending value via fmt.Errorf.
var (
	// ErrInvalidCount indicates a non-positive sample count.
	ErrInvalidCount = errors.New("chaos: sample count must be positive")

	// ErrInvalidDepth indicates a negative iteration depth.
	ErrInvalidDepth = errors.New("chaos: iteration depth must be non-negative")

	// ErrInvalidRate indicates a growth rate that is NaN or infinite.
	ErrInvalidRate = errors.New("chaos: growth rate must be finite")

	// ErrInvalidPeriod indicates a period that is not an odd integer >= 3.
	ErrInvalidPeriod = errors.New("chaos: period must be an odd integer >= 3")
)
