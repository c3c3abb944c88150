package resume

import (
	"errors"
	"fmt"
)

// Common errors used by repository/use cases
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrIntegrity signals a broken invariant inside stored data
	// (e.g. a resume without its candidate). Never caused by user input.
	ErrIntegrity = errors.New("data integrity violation")
)

// ValidationError описывает нарушение ограничения конкретного поля.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a field validation failure.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
