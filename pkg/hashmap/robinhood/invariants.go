package robinhood

import (
	"github.com/pkg/errors"
	"github.com/scottcagno/robinhood/pkg/generic/list"
)

// checkInvariants walks both halves of the map and reports the first
// place where they disagree with each other or with the placement rules.
func (m *Map[K, V]) checkInvariants() error {
	if m.order == nil {
		if m.table.size != 0 || len(m.table.slots) != 0 {
			return errors.New("uninitialized map has slots")
		}
		return nil
	}
	t := &m.table
	capacity := len(t.slots)
	if capacity == 0 {
		return errors.New("initialized map has no slots")
	}
	if t.size != m.order.Len() {
		return errors.Errorf("size %d, order list holds %d entries", t.size, m.order.Len())
	}
	if overloaded(t.size, capacity) {
		return errors.Errorf("size %d overloads capacity %d", t.size, capacity)
	}
	seen := make(map[*list.Node[Entry[K, V]]]int, t.size)
	var used int
	for i := range t.slots {
		s := &t.slots[i]
		if s.isEmpty() {
			if s.node != nil {
				return errors.Errorf("empty slot %d references a node", i)
			}
			continue
		}
		if s.dist < 0 {
			return errors.Errorf("slot %d has displacement %d", i, s.dist)
		}
		if s.node == nil {
			return errors.Errorf("occupied slot %d references no node", i)
		}
		if j, ok := seen[s.node]; ok {
			return errors.Errorf("slots %d and %d reference the same node", j, i)
		}
		seen[s.node] = i
		used++
		e := &s.node.Value
		if h := m.hash(e.key); h != e.hash {
			return errors.Errorf("slot %d key %v has cached hash %d, want %d", i, e.key, e.hash, h)
		}
		if want := (t.home(e.hash) + s.dist) % capacity; want != i {
			return errors.Errorf("slot %d key %v with displacement %d belongs in slot %d", i, e.key, s.dist, want)
		}
		// a robin hood run never steps down by more than one
		if p := &t.slots[t.prev(i)]; s.dist > 0 && (p.isEmpty() || p.dist < s.dist-1) {
			return errors.Errorf("slot %d displacement %d follows slot %d displacement %d", i, s.dist, t.prev(i), p.dist)
		}
	}
	if used != t.size {
		return errors.Errorf("%d occupied slots, size %d", used, t.size)
	}
	for n := m.order.Front(); n != nil; n = n.Next() {
		if _, ok := seen[n]; !ok {
			return errors.Errorf("key %v is in the order list but not in the table", n.Value.key)
		}
		if i, ok := t.lookup(n.Value.hash, n.Value.key); !ok || t.slots[i].node != n {
			return errors.Errorf("lookup of key %v does not reach its slot", n.Value.key)
		}
	}
	return nil
}
