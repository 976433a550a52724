package predictor

import (
	"fmt"
	"strings"
)

// ValidationError reports a request field outside its declared vocabulary or
// range. It is recoverable: the caller fixes the field and retries. The
// message names the field's accepted domain.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// invalidCategory builds the message shape "Invalid bus number. Valid
// buses: BUS001, ...".
func invalidCategory(field, noun, pluralNoun string, allowed []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Invalid %s. Valid %s: %s", noun, pluralNoun, strings.Join(allowed, ", ")),
	}
}
