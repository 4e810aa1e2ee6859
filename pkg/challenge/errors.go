package challenge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidTransition is returned when a lifecycle move is not allowed from
// the challenge's current status.
var ErrInvalidTransition = errors.New("challenge: invalid state transition")

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("challenge: not found")

// ValidationError lists every input field that failed a constraint, keyed by
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "challenge: invalid input: " + strings.Join(parts, "; ")
}

// NotFoundError is returned when an operation references an id that is not
// in the pending collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("challenge: %q not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
