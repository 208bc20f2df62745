package registry

import "fmt"

// ValidationError represents a single invalid pathway declaration.
type ValidationError struct {
	Flavor string // "transition", "terminal" or "updatable"
	Name   string // Declared pathway name
	Reason string // Human-readable reason for rejection
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Flavor, e.Name, e.Reason)
}

// AggregateError represents multiple declaration failures from one Build.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d invalid declarations:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual declaration errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all declaration errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
