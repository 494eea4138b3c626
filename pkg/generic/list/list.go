package list

import (
	"fmt"
	"iter"
)

// Node is an element of a List. A node handle stays valid until it
// is removed from its list.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
	list       *List[T]
}

// Next returns the following node or nil
func (n *Node[T]) Next() *Node[T] {
	if p := n.next; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// Prev returns the preceding node or nil
func (n *Node[T]) Prev() *Node[T] {
	if p := n.prev; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

func (n *Node[T]) String() string {
	return fmt.Sprintf("node[value=%v, prev=%p, next=%p]", n.Value, n.prev, n.next)
}

// List is a doubly linked list with a sentinel root. New nodes are
// only ever appended, so iteration order is insertion order. The
// zero value is an empty list ready to use.
type List[T any] struct {
	root Node[T] // root.next is the front, root.prev is the back
	len  int
}

func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// Init clears the list. Nodes that were in the list are not detached,
// so callers that hand out node handles should allocate a new list instead.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Len returns the number of nodes in the list
func (l *List[T]) Len() int {
	return l.len
}

// Front returns the first node or nil
func (l *List[T]) Front() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last node or nil
func (l *List[T]) Back() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// push links n in after at
func (l *List[T]) push(n, at *Node[T]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
	n.list = l
	l.len++
}

// pop unlinks n and detaches it from the list
func (l *List[T]) pop(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	n.list = nil
	l.len--
}

// PushBack appends v and returns its node
func (l *List[T]) PushBack(v T) *Node[T] {
	l.lazyInit()
	n := &Node[T]{Value: v}
	l.push(n, l.root.prev)
	return n
}

// Remove unlinks n if it belongs to l and returns its value
func (l *List[T]) Remove(n *Node[T]) T {
	if n.list == l {
		l.pop(n)
	}
	return n.Value
}

// Range calls fn for every node from front to back until fn returns
// false. The next node is read after fn returns, so fn must not remove
// the node it was handed.
func (l *List[T]) Range(fn func(n *Node[T]) bool) {
	for n := l.Front(); n != nil; n = n.Next() {
		if !fn(n) {
			return
		}
	}
}

// All returns an iterator over the nodes from front to back
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		l.Range(yield)
	}
}
