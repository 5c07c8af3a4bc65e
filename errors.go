package intmap

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers should compare with errors.Is, not
// equality, since every returned error wraps one of these with
// operation-specific context.
var (
	// ErrInvalidKey is returned when Add or TMap.Add is given a negative key.
	ErrInvalidKey = errors.New("intmap: invalid key")

	// ErrConflictingValues is returned when a merge at a leaf sees two
	// differing values and no meet function was supplied to resolve them.
	ErrConflictingValues = errors.New("intmap: conflicting values")

	// ErrOwnershipViolation is returned when a TMap is accessed by a
	// caller other than its current owner, or through a handle that has
	// already been sealed to persistent.
	ErrOwnershipViolation = errors.New("intmap: ownership violation")

	// ErrKeyNotFound is returned by the default Ref/TMap.Ref not-found
	// handler. Callers may supply their own handler to convert a miss
	// into a zero value, an Optional, or any other representation.
	ErrKeyNotFound = errors.New("intmap: key not found")
)

func keyNotFoundError(k int) error {
	return fmt.Errorf("intmap: ref %d: %w", k, ErrKeyNotFound)
}

func invalidKeyError(k int) error {
	return fmt.Errorf("intmap: key %d: %w", k, ErrInvalidKey)
}

func conflictingValuesError(k int) error {
	return fmt.Errorf("intmap: add %d: %w", k, ErrConflictingValues)
}

func conflictingValuesErrorNoKey(op string) error {
	return fmt.Errorf("intmap: %s: %w", op, ErrConflictingValues)
}

func ownershipViolationError() error {
	return fmt.Errorf("intmap: %w", ErrOwnershipViolation)
}
