package linkedlist

// Node is a single cell of a singly linked list. A nil *Node marks the end
// of a chain.
type Node[T any] struct {
	value T
	next  *Node[T]
}

func newNode[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{
		value: value,
		next:  next,
	}
}

func (n *Node[T]) Value() T {
	return n.value
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}
