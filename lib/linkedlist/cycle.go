package linkedlist

import "github.com/pkg/errors"

// CheckAcyclic reports whether the chain starting at head terminates.
// Sorting a cyclic chain never returns, so callers that cannot vouch for
// their input may run this first; Sort itself does not.
//
// Floyd's two-cursor walk: the fast cursor laps the slow one only if the
// chain loops back on itself.
func CheckAcyclic[T any](head *Node[T]) error {
	slow := head
	fast := head

	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return errors.New("cycle detected")
		}
	}
	return nil
}
