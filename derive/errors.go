// =======================
// derive/errors.go
// =======================

package derive

import "fmt"

// ValidationError reports a malformed Profile or Request. It is always
// raised before any hashing takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// HashCapabilityError wraps a failure reported by the injected hash
// capability. Such failures are fatal for the derivation and are never
// retried.
type HashCapabilityError struct {
	Algorithm string
	Err       error
}

func (e *HashCapabilityError) Error() string {
	return fmt.Sprintf("hash capability %q: %v", e.Algorithm, e.Err)
}

func (e *HashCapabilityError) Unwrap() error { return e.Err }

// EncodingError reports an invariant violation inside the base conversion
// step. Seeing one means a bug, not bad user input.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return "base conversion: " + e.Reason
}
