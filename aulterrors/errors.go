// Package aulterrors defines the error taxonomy shared across the SDK.
//
// Configuration and validation errors are fatal and must be fixed by the
// caller or in the message registry; they are never retried. Transport
// failures are wrapped where they occur and surfaced after the retry
// policy is exhausted. Chain-level rejections are NOT errors: broadcast
// results carry a non-zero code as data.
package aulterrors

import "fmt"

// ConfigurationError indicates a defect in the SDK setup or the message
// registry: an unregistered message type, a field-order violation, an
// unresolvable signer shape, or an unresolvable chain id.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

// Configurationf builds a ConfigurationError from a format string.
func Configurationf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidationError indicates invalid caller input: camelCase message keys,
// numbers outside the safe integer range, invalid base64 in byte fields,
// or an empty message list.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// PaginationLoopError indicates that a paginated endpoint returned a
// cursor that was already seen, which would otherwise loop forever.
type PaginationLoopError struct {
	Cursor string
}

func (e *PaginationLoopError) Error() string {
	return fmt.Sprintf("pagination cursor repeated: %q", e.Cursor)
}
