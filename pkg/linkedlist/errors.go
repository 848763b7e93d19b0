package linkedlist

import (
	"errors"
	"fmt"
)

// List operation errors.
var (
	ErrEmptyList    = errors.New("list is empty")
	ErrNotFound     = errors.New("item does not occur in the list")
	ErrInvalidIndex = errors.New("invalid index")
)

func negativeIndex(index int) error {
	return fmt.Errorf("%w: negative index %d is not allowed", ErrInvalidIndex, index)
}

func indexOutOfBounds(index, size int) error {
	return fmt.Errorf("%w: index %d is out of bounds (size %d)", ErrInvalidIndex, index, size)
}

func notFound[T any](target T) error {
	return fmt.Errorf("%w: %v", ErrNotFound, target)
}
