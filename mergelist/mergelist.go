// Package mergelist merges sorted singly linked integer lists.
//
// Merge relinks the nodes of its two inputs into one ascending list around a
// dummy head, allocating nothing. The merge is stable: on equal values the
// node from the first list comes out ahead of the node from the second.
// MergeInts wraps the same routine for plain slices.
//
// Complexity: O(len(a) + len(b)) time, O(1) extra memory for Merge.
package mergelist

// Node is one cell of a singly linked integer list.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice builds a list preserving slice order. An empty slice yields nil.
func FromSlice(vals []int) *Node {
	var head Node
	tail := &head
	for _, v := range vals {
		tail.Next = &Node{Val: v}
		tail = tail.Next
	}

	return head.Next
}

// Slice flattens the list into a fresh slice. A nil list yields nil.
func (n *Node) Slice() []int {
	var out []int
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur.Val)
	}

	return out
}

// Merge splices two ascending lists into one, reusing the input nodes.
// Both inputs are consumed: their nodes are relinked into the result, so
// neither a nor b remains a valid list afterwards.
func Merge(a, b *Node) *Node {
	var head Node
	tail := &head
	for a != nil && b != nil {
		// <= keeps equal values from a ahead of b (stability).
		if a.Val <= b.Val {
			tail.Next = a
			a = a.Next
		} else {
			tail.Next = b
			b = b.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return head.Next
}

// MergeInts merges two ascending slices via the list routine and flattens
// the result. Nil and empty inputs are fine.
func MergeInts(a, b []int) []int {
	return Merge(FromSlice(a), FromSlice(b)).Slice()
}
