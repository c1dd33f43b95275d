package utils

import (
	"errors"
	"fmt"
)

var ErrorRecordNotFound = errors.New("record not found")

// FailureKind classifies why an operation was refused, so callers can
// assert on the cause instead of a bare boolean.
type FailureKind string

const (
	// input missing/invalid before any write
	FailureValidation FailureKind = "validation"
	// accounting invariant broken (unbalanced lines, duplicate code/flag)
	FailureInvariant FailureKind = "invariant"
	// delete blocked by existing dependents
	FailureReference FailureKind = "reference"
	// illegal document state transition
	FailureState FailureKind = "state"
)

type DomainError struct {
	Kind    FailureKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func ValidationError(format string, args ...any) error {
	return &DomainError{Kind: FailureValidation, Message: fmt.Sprintf(format, args...)}
}

func InvariantError(format string, args ...any) error {
	return &DomainError{Kind: FailureInvariant, Message: fmt.Sprintf(format, args...)}
}

func ReferenceError(format string, args ...any) error {
	return &DomainError{Kind: FailureReference, Message: fmt.Sprintf(format, args...)}
}

func StateError(format string, args ...any) error {
	return &DomainError{Kind: FailureState, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the failure kind of err, if it carries one.
func KindOf(err error) (FailureKind, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}
