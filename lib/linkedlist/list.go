package linkedlist

import (
	"cmp"

	"github.com/pkg/errors"
)

// List is a thin wrapper around a chain of nodes. It stores no length; the
// size of a list is recoverable only by traversal.
type List[T cmp.Ordered] struct {
	head *Node[T]
}

func New[T cmp.Ordered]() *List[T] {
	return &List[T]{head: nil}
}

// FromSlice builds a list whose head-to-tail order equals the slice order.
// Values are prepended in reverse so every insertion stays O(1).
func FromSlice[T cmp.Ordered](values []T) *List[T] {
	list := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		list.Prepend(values[i])
	}
	return list
}

func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Prepend makes value the new head of the list.
func (l *List[T]) Prepend(value T) {
	l.head = newNode(value, l.head)
}

// Map calls fn on each value from head to tail and stops at the first error.
func (l *List[T]) Map(fn func(T) error) error {
	if l == nil {
		return nil
	}
	current := l.head
	for current != nil {
		if err := fn(current.value); err != nil {
			return err
		}
		current = current.next
	}
	return nil
}

// Length counts the nodes by traversal.
func (l *List[T]) Length() int {
	count := 0
	_ = l.Map(func(T) error {
		count++
		return nil
	})
	return count
}

// Slice collects the values from head to tail. The list is not mutated.
func (l *List[T]) Slice() []T {
	values := make([]T, 0)
	_ = l.Map(func(v T) error {
		values = append(values, v)
		return nil
	})
	return values
}

// Sort relinks the list's nodes into non-decreasing order.
func (l *List[T]) Sort() {
	l.head = Sort(l.head)
}

// CheckSorted returns an error unless the values are non-decreasing from
// head to tail.
func (l *List[T]) CheckSorted() error {
	first := true
	var prev T

	return l.Map(func(v T) error {
		if !first && prev > v {
			return errors.New("assertion error")
		}
		first = false
		prev = v
		return nil
	})
}
