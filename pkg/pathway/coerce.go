package pathway

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// MapArgs is the conventional envelope for externally supplied arguments: the
// dynamically-shaped value an API layer hands over before coercion. Contract
// types are free to fix a different envelope type.
type MapArgs = map[string]any

// CoercionError reports that an external argument envelope could not be
// translated into a pathway's typed argument. It is recoverable: the argument
// source decides whether to reject the request. The framework never retries.
type CoercionError struct {
	Pathway string
	Err     error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("pathway %q: cannot coerce arguments: %v", e.Pathway, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// DecodeArgs builds a coercion function that decodes a MapArgs envelope into
// the argument type A. Unknown keys in the envelope are an error, so malformed
// external input fails loudly instead of being silently dropped.
func DecodeArgs[A any]() CoerceFunc[MapArgs, A] {
	return func(args MapArgs) (A, error) {
		var out A
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &out,
			ErrorUnused: true,
		})
		if err != nil {
			return out, fmt.Errorf("failed to build decoder: %w", err)
		}
		if err := dec.Decode(args); err != nil {
			return out, err
		}
		return out, nil
	}
}
