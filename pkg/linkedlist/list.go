package linkedlist

import (
	"fmt"
	"io"
	"iter"
)

// node is a single element of the chain. Each node is reachable from exactly
// one predecessor, or from the list head.
type node[T comparable] struct {
	data T
	next *node[T]
}

// List is a singly linked list of comparable values.
type List[T comparable] struct {
	head *node[T]
}

// New returns a list holding values in argument order.
func New[T comparable](values ...T) *List[T] {
	l := &List[T]{}
	l.head = chainOf(values)
	return l
}

// chainOf links values into a fresh chain and returns its head.
func chainOf[T comparable](values []T) *node[T] {
	var head, tail *node[T]
	for _, v := range values {
		n := &node[T]{data: v}
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	return head
}

// last returns the tail node, or nil for an empty list.
func (l *List[T]) last() *node[T] {
	if l.head == nil {
		return nil
	}
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

// nodeAt returns the node at index, or nil when the list is shorter.
func (l *List[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index && n != nil; i++ {
		n = n.next
	}
	return n
}

// find returns the first node whose data equals target.
func (l *List[T]) find(target T) *node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.data == target {
			return n
		}
	}
	return nil
}

// Push inserts v at the head of the list.
func (l *List[T]) Push(v T) {
	l.head = &node[T]{data: v, next: l.head}
}

// Append inserts v at the tail of the list.
func (l *List[T]) Append(v T) {
	n := &node[T]{data: v}
	tail := l.last()
	if tail == nil {
		l.head = n
		return
	}
	tail.next = n
}

// InsertAtIndex inserts v before the node currently at index. An index equal
// to Size appends. Returns ErrInvalidIndex for a negative index or one past
// the end of the list.
func (l *List[T]) InsertAtIndex(index int, v T) error {
	if index < 0 {
		return negativeIndex(index)
	}
	if index == 0 {
		l.Push(v)
		return nil
	}

	prev := l.nodeAt(index - 1)
	if prev == nil {
		return indexOutOfBounds(index, l.Size())
	}
	prev.next = &node[T]{data: v, next: prev.next}
	return nil
}

// InsertAfter inserts v after the first node equal to target.
func (l *List[T]) InsertAfter(target, v T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	n := l.find(target)
	if n == nil {
		return notFound(target)
	}
	n.next = &node[T]{data: v, next: n.next}
	return nil
}

// InsertBefore inserts v before the first node equal to target.
func (l *List[T]) InsertBefore(target, v T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	if l.head.data == target {
		l.Push(v)
		return nil
	}

	prev := l.head
	for prev.next != nil && prev.next.data != target {
		prev = prev.next
	}
	if prev.next == nil {
		return notFound(target)
	}
	prev.next = &node[T]{data: v, next: prev.next}
	return nil
}

// Size counts the nodes in the list.
func (l *List[T]) Size() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Clear drops every node.
func (l *List[T]) Clear() {
	l.head = nil
}

// DeleteFirst removes the head node and returns its value.
func (l *List[T]) DeleteFirst() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	v := l.head.data
	l.head = l.head.next
	return v, nil
}

// DeleteLast removes the tail node and returns its value. A list with a
// single node becomes empty.
func (l *List[T]) DeleteLast() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	if l.head.next == nil {
		v := l.head.data
		l.head = nil
		return v, nil
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	v := prev.next.data
	prev.next = nil
	return v, nil
}

// DeleteNode removes the first node equal to v.
func (l *List[T]) DeleteNode(v T) error {
	if l.head == nil {
		return ErrEmptyList
	}
	if l.head.data == v {
		l.head = l.head.next
		return nil
	}

	prev := l.head
	for prev.next != nil && prev.next.data != v {
		prev = prev.next
	}
	if prev.next == nil {
		return notFound(v)
	}
	prev.next = prev.next.next
	return nil
}

// DeleteAtIndex removes the node at index and returns its value. A negative
// index is rejected before the list is inspected.
func (l *List[T]) DeleteAtIndex(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, negativeIndex(index)
	}
	if l.head == nil {
		return zero, ErrEmptyList
	}
	if index == 0 {
		return l.DeleteFirst()
	}

	prev := l.nodeAt(index - 1)
	if prev == nil || prev.next == nil {
		return zero, indexOutOfBounds(index, l.Size())
	}
	v := prev.next.data
	prev.next = prev.next.next
	return v, nil
}

// PeekFirst returns the head value.
func (l *List[T]) PeekFirst() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	return l.head.data, nil
}

// PeekLast returns the tail value.
func (l *List[T]) PeekLast() (T, error) {
	var zero T
	tail := l.last()
	if tail == nil {
		return zero, ErrEmptyList
	}
	return tail.data, nil
}

// PeekAtIndex returns the value at index.
func (l *List[T]) PeekAtIndex(index int) (T, error) {
	var zero T
	if index < 0 {
		return zero, negativeIndex(index)
	}
	if l.head == nil {
		return zero, ErrEmptyList
	}
	n := l.nodeAt(index)
	if n == nil {
		return zero, indexOutOfBounds(index, l.Size())
	}
	return n.data, nil
}

// Contains reports whether any node equals v. Searching an empty list is an
// error rather than a miss.
func (l *List[T]) Contains(v T) (bool, error) {
	if l.head == nil {
		return false, ErrEmptyList
	}
	return l.find(v) != nil, nil
}

// Reverse reverses the order of the list in place.
func (l *List[T]) Reverse() error {
	if l.head == nil {
		return ErrEmptyList
	}

	var prev *node[T]
	n := l.head
	for n != nil {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	l.head = prev
	return nil
}

// Concat moves the nodes of other to the end of l, leaving other empty.
// A nil or empty other is a no-op. Concatenating a list with itself appends
// a copy of its values.
func (l *List[T]) Concat(other *List[T]) {
	if other == nil || other.head == nil {
		return
	}

	chain := other.head
	if other == l {
		chain = chainOf(l.Values())
	} else {
		other.head = nil
	}

	tail := l.last()
	if tail == nil {
		l.head = chain
		return
	}
	tail.next = chain
}

// Copy replaces the contents of l with a copy of other's values. The lists
// share no nodes afterwards. A nil other clears l.
func (l *List[T]) Copy(other *List[T]) {
	if other == l {
		return
	}
	if other == nil {
		l.head = nil
		return
	}
	l.head = chainOf(other.Values())
}

// Clone returns a new list with the same values as l.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{head: chainOf(l.Values())}
}

// All yields each index and value from head to tail.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.data) {
				return
			}
			i++
		}
	}
}

// Values returns the values from head to tail. The result is never nil.
func (l *List[T]) Values() []T {
	values := make([]T, 0)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.data)
	}
	return values
}

// Display writes each value to w on its own line, head to tail.
func (l *List[T]) Display(w io.Writer) error {
	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintln(w, n.data); err != nil {
			return err
		}
	}
	return nil
}

// String renders the list as "[a b c]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
