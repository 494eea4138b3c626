package robinhood

import "github.com/scottcagno/robinhood/pkg/generic/list"

// empty marks a slot with no occupant
const empty = -1

// slot is a single position in the slot table. It references an entry
// in the order list but never owns it.
type slot[K comparable, V any] struct {
	dist int // steps from the home slot, or empty
	node *list.Node[Entry[K, V]]
}

func (s *slot[K, V]) isEmpty() bool {
	return s.dist == empty
}

// checkHashAndKey checks if this slot holds the specified hashkey and key
func (s *slot[K, V]) checkHashAndKey(hashkey uint64, key K) bool {
	return s.node.Value.hash == hashkey && s.node.Value.key == key
}

// table is the robin hood slot table. It always has at least one empty
// slot while the load factor stays under loadNum/loadDen, which is what
// lets every lookup loop below run without a bound.
type table[K comparable, V any] struct {
	slots []slot[K, V]
	size  int
}

func newTable[K comparable, V any](capacity int) table[K, V] {
	slots := make([]slot[K, V], capacity)
	for i := range slots {
		slots[i].dist = empty
	}
	return table[K, V]{slots: slots}
}

// home returns the slot hashkey points at
func (t *table[K, V]) home(hashkey uint64) int {
	return int(hashkey % uint64(len(t.slots)))
}

// next returns the slot after i, wrapping around at the end
func (t *table[K, V]) next(i int) int {
	if i++; i == len(t.slots) {
		return 0
	}
	return i
}

// prev returns the slot before i, wrapping around at the start
func (t *table[K, V]) prev(i int) int {
	if i == 0 {
		return len(t.slots) - 1
	}
	return i - 1
}

// lookup returns the index of the slot holding key. The walk ends at an
// empty slot, or at an occupant that sits closer to its home than the
// walker is to ours: had key been stored further on, placement would
// have handed it this slot.
func (t *table[K, V]) lookup(hashkey uint64, key K) (int, bool) {
	if len(t.slots) == 0 {
		return 0, false
	}
	i := t.home(hashkey)
	for dist := 0; ; dist++ {
		s := &t.slots[i]
		if s.isEmpty() || s.dist < dist {
			return i, false
		}
		if s.checkHashAndKey(hashkey, key) {
			return i, true
		}
		i = t.next(i)
	}
}

// place stores n in the table. The caller guarantees its key is absent.
func (t *table[K, V]) place(n *list.Node[Entry[K, V]]) {
	cand := slot[K, V]{dist: 0, node: n}
	i := t.home(n.Value.hash)
	for {
		s := &t.slots[i]
		// an empty slot ends the walk, the candidate settles here
		if s.isEmpty() {
			*s = cand
			t.size++
			return
		}
		// the occupant is closer to home than the candidate, so the
		// candidate takes the slot and the occupant is carried forward
		if s.dist < cand.dist {
			*s, cand = cand, *s
		}
		// whichever entry is carried is one slot further from home
		cand.dist++
		i = t.next(i)
	}
}

// remove empties slot i and shifts the following run back by one slot
// until it reaches an empty slot or an entry already at home.
func (t *table[K, V]) remove(i int) {
	// clear the slot of the erased entry
	t.slots[i] = slot[K, V]{dist: empty}
	t.size--
	// walk the run that follows. an empty slot (dist -1) or an entry in
	// its home slot (dist 0) stops the shift
	for j := t.next(i); t.slots[j].dist > 0; j = t.next(j) {
		// move the entry back into the hole, one slot closer to home
		t.slots[t.prev(j)] = slot[K, V]{dist: t.slots[j].dist - 1, node: t.slots[j].node}
		// its old slot is the new hole
		t.slots[j] = slot[K, V]{dist: empty}
	}
}

// maxDist returns the highest displacement in the table
func (t *table[K, V]) maxDist() int {
	var hdist int
	for i := range t.slots {
		if t.slots[i].dist > hdist {
			hdist = t.slots[i].dist
		}
	}
	return hdist
}

// sumDist returns the sum of all displacements in the table
func (t *table[K, V]) sumDist() int {
	var sum int
	for i := range t.slots {
		if !t.slots[i].isEmpty() {
			sum += t.slots[i].dist
		}
	}
	return sum
}
