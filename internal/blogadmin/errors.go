package blogadmin

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that no blog matches the given slug.
var ErrNotFound = errors.New("blog not found")

// ValidationError reports a missing required field in a submission.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}
