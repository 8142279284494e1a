package linkedlist

import "cmp"

// Sort sorts the chain starting at head into non-decreasing order and
// returns the new head. Existing nodes are relinked, never copied, so every
// node reachable from head before the call is reachable from the returned
// head afterwards. The chain must be finite and acyclic; see CheckAcyclic.
//
// The sort is a stable merge sort: ties keep the node from the left sublist
// first. O(n log n) time, O(log n) stack.
func Sort[T cmp.Ordered](head *Node[T]) *Node[T] {
	return SortFunc(head, cmp.Less[T])
}

// SortFunc is Sort under a caller-supplied strict ordering. less must define
// a total order on T.
func SortFunc[T any](head *Node[T], less func(a, b T) bool) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	left, right := splitMiddle(head)

	left = SortFunc(left, less)
	right = SortFunc(right, less)

	return sortedMerge(left, right, less)
}

// splitMiddle severs the chain at its midpoint and returns the two halves.
// The left half gets the extra node when the length is odd. Midpoint finding
// uses a slow cursor advancing one node per step and a fast cursor advancing
// two, with fast starting one node ahead; when fast runs out, slow is the
// last node of the left half.
func splitMiddle[T any](head *Node[T]) (*Node[T], *Node[T]) {
	slow := head
	fast := head.next

	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	right := slow.next
	slow.next = nil
	return head, right
}

// sortedMerge interleaves two sorted chains into one sorted chain. A
// sentinel node keeps a valid tail to append to; once either side is
// exhausted the remainder of the other is linked in as a whole. Ties favor
// the left chain, which is what makes the sort stable.
func sortedMerge[T any](left, right *Node[T], less func(a, b T) bool) *Node[T] {
	sentinel := &Node[T]{}
	tail := sentinel

	for left != nil && right != nil {
		if less(right.value, left.value) {
			tail.next = right
			right = right.next
		} else {
			tail.next = left
			left = left.next
		}
		tail = tail.next
	}

	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}

	return sentinel.next
}
