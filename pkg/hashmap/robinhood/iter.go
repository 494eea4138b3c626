package robinhood

import (
	"fmt"
	"iter"
	"strings"

	"github.com/scottcagno/robinhood/pkg/generic/list"
)

// Iterator walks a Map in insertion order. It reads the order list as it
// goes, so entries appended before it gets there are visited. Inserting
// or erasing while iterating is not supported.
type Iterator[K comparable, V any] struct {
	n *list.Node[Entry[K, V]]
}

// Front returns an iterator positioned at the oldest entry
func (m *Map[K, V]) Front() Iterator[K, V] {
	if m.order == nil {
		return Iterator[K, V]{}
	}
	return Iterator[K, V]{n: m.order.Front()}
}

// Valid reports whether the iterator points at an entry
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil
}

// Next advances to the following entry
func (it *Iterator[K, V]) Next() {
	if it.n != nil {
		it.n = it.n.Next()
	}
}

// Entry returns the current entry
func (it Iterator[K, V]) Entry() *Entry[K, V] {
	return &it.n.Value
}

// Key returns the key of the current entry
func (it Iterator[K, V]) Key() K {
	return it.n.Value.key
}

// Value returns the value of the current entry
func (it Iterator[K, V]) Value() V {
	return it.n.Value.Value
}

// Range calls fn for every entry in insertion order as long as fn returns true
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	for it := m.Front(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// All returns an iterator over keys and values in insertion order
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.Range
}

// Keys returns an iterator over keys in insertion order
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := m.Front(); it.Valid(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values returns an iterator over values in insertion order
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Front(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Entries returns an iterator over entries in insertion order. Values may
// be updated through the yielded entries.
func (m *Map[K, V]) Entries() iter.Seq[*Entry[K, V]] {
	return func(yield func(*Entry[K, V]) bool) {
		for it := m.Front(); it.Valid(); it.Next() {
			if !yield(it.Entry()) {
				return
			}
		}
	}
}

// FromSeq builds a map from seq in order. A key that repeats keeps its first value.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K]) *Map[K, V] {
	m := New[K, V](opts...)
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
