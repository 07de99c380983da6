package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and adapters.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError lists the problems found in a request. It matches ErrInvalidInput.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
