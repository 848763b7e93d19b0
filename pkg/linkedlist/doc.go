// Package linkedlist provides a generic singly linked list.
//
// A List holds only a head pointer. Operations that reach the tail (Append,
// DeleteLast, PeekLast) and index-based operations walk the chain, so they
// cost O(n) and O(index) respectively. The zero value of List is an empty
// list ready to use. Lists are not safe for concurrent use.
//
// Operations that cannot complete return one of the sentinel errors
// ErrEmptyList, ErrNotFound or ErrInvalidIndex, possibly wrapped with the
// offending index or value; test for them with errors.Is.
package linkedlist
