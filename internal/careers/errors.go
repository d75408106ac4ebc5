package careers

import "errors"

// Repository errors.
var (
	ErrJobNotFound = errors.New("job not found")
)
