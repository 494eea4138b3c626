package robinhood

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/scottcagno/robinhood/pkg/generic/list"
	"github.com/scottcagno/robinhood/pkg/hash"
)

// Entry is a key value pair stored in a Map. The key is fixed once
// inserted; the value may be changed in place.
type Entry[K comparable, V any] struct {
	key   K
	hash  uint64
	Value V
}

// Key returns the entry's key
func (e *Entry[K, V]) Key() K {
	return e.key
}

// Map is a hash map that iterates in insertion order. The zero value is
// an empty map with the default configuration.
//
// A Map is NOT goroutine-safe.
type Map[K comparable, V any] struct {
	hash     hash.Func[K]
	conf     Config
	log      zerolog.Logger
	table    table[K, V]
	order    *list.List[Entry[K, V]]
	rebuilds int
}

// New returns an empty map configured by opts
func New[K comparable, V any](opts ...Option[K]) *Map[K, V] {
	m := new(Map[K, V])
	m.init(buildOptions(opts))
	return m
}

func (m *Map[K, V]) init(o options[K]) {
	m.hash = o.hash
	m.conf = o.conf
	m.log = o.conf.Logger.With().Str("component", "robinhood").Logger()
	m.reset(o.conf.InitialCapacity)
}

// reset drops every entry, allocates capacity empty slots and starts
// the rebuild count over
func (m *Map[K, V]) reset(capacity int) {
	m.table = newTable[K, V](capacity)
	m.order = list.New[Entry[K, V]]()
	m.rebuilds = 0
}

// lazyInit sets up a zero value map on first use
func (m *Map[K, V]) lazyInit() {
	if m.order == nil {
		m.init(buildOptions[K](nil))
	}
}

// Insert adds key with value and reports true. If key is already
// present nothing changes and Insert reports false.
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.lazyInit()
	hashkey := m.hash(key)
	if _, ok := m.table.lookup(hashkey, key); ok {
		return false
	}
	m.insert(hashkey, key, value)
	return true
}

// insert appends a new entry and places it. The caller guarantees key is absent.
func (m *Map[K, V]) insert(hashkey uint64, key K, value V) *list.Node[Entry[K, V]] {
	n := m.order.PushBack(Entry[K, V]{key: key, hash: hashkey, Value: value})
	m.table.place(n)
	if overloaded(m.table.size, len(m.table.slots)) {
		m.rebuild()
	}
	return n
}

// rebuild grows the slot table by the growth factor and places every
// entry again in list order. Nodes are reused, so entry handles and
// iteration order survive.
func (m *Map[K, V]) rebuild() {
	oldCap := len(m.table.slots)
	newCap := oldCap * m.conf.GrowthFactor
	m.table = newTable[K, V](newCap)
	for n := m.order.Front(); n != nil; n = n.Next() {
		m.table.place(n)
	}
	m.rebuilds++
	m.log.Debug().
		Int("old_capacity", oldCap).
		Int("new_capacity", newCap).
		Int("size", m.table.size).
		Int("rebuilds", m.rebuilds).
		Msg("rebuilt slot table")
}

// Erase removes key and reports true, or reports false if key is absent
func (m *Map[K, V]) Erase(key K) bool {
	if m.order == nil {
		return false
	}
	i, ok := m.table.lookup(m.hash(key), key)
	if !ok {
		return false
	}
	m.order.Remove(m.table.slots[i].node)
	m.table.remove(i)
	return true
}

// Find returns the entry stored under key. The returned entry stays valid
// until it is erased or the map is cleared.
func (m *Map[K, V]) Find(key K) (*Entry[K, V], bool) {
	if m.order == nil {
		return nil, false
	}
	i, ok := m.table.lookup(m.hash(key), key)
	if !ok {
		return nil, false
	}
	return &m.table.slots[i].node.Value, true
}

// Get returns the value stored under key, or the zero value and false
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e, ok := m.Find(key); ok {
		return e.Value, true
	}
	return *new(V), false
}

// Contains reports whether key is present
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Index returns a pointer to the value stored under key, inserting the
// zero value first if key is absent. The pointer stays valid until key
// is erased or the map is cleared.
func (m *Map[K, V]) Index(key K) *V {
	m.lazyInit()
	hashkey := m.hash(key)
	if i, ok := m.table.lookup(hashkey, key); ok {
		return &m.table.slots[i].node.Value.Value
	}
	return &m.insert(hashkey, key, *new(V)).Value.Value
}

// At returns the value stored under key, or an error wrapping
// ErrKeyNotFound if key is absent.
func (m *Map[K, V]) At(key K) (V, error) {
	if e, ok := m.Find(key); ok {
		return e.Value, nil
	}
	return *new(V), errors.Wrapf(ErrKeyNotFound, "key %v", key)
}

// Len returns the number of entries
func (m *Map[K, V]) Len() int {
	return m.table.size
}

// Empty reports whether the map holds no entries
func (m *Map[K, V]) Empty() bool {
	return m.table.size == 0
}

// Cap returns the number of slots in the slot table. A zero value map
// reports the default initial capacity it will allocate on first use.
func (m *Map[K, V]) Cap() int {
	if m.order == nil {
		return DefaultInitialCapacity
	}
	return len(m.table.slots)
}

// Clear removes every entry and shrinks the table back to its initial capacity
func (m *Map[K, V]) Clear() {
	m.lazyInit()
	m.reset(m.conf.InitialCapacity)
}

// HashFunction returns the hash function used for keys
func (m *Map[K, V]) HashFunction() hash.Func[K] {
	m.lazyInit()
	return m.hash
}

// Clone returns a deep copy of m with the same hash function, configuration
// and capacity. Entries are copied in iteration order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m.lazyInit()
	c := &Map[K, V]{hash: m.hash, conf: m.conf, log: m.log}
	c.reset(len(m.table.slots))
	for n := m.order.Front(); n != nil; n = n.Next() {
		c.insert(n.Value.hash, n.Value.key, n.Value.Value)
	}
	return c
}

// CopyFrom replaces the contents of m with a copy of other's entries.
// m keeps its own hash function and configuration and takes over other's
// capacity. A nil other leaves m empty at its initial capacity.
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}
	m.lazyInit()
	if other == nil {
		m.reset(m.conf.InitialCapacity)
		return
	}
	capacity := len(other.table.slots)
	if capacity == 0 {
		capacity = m.conf.InitialCapacity
	}
	src := other.order
	m.reset(capacity)
	if src == nil {
		return
	}
	for n := src.Front(); n != nil; n = n.Next() {
		m.Insert(n.Value.key, n.Value.Value)
	}
}

// Pair is a key value pair used to build a Map from a literal list
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Of builds a map from pairs in order. A key that repeats keeps its first value.
func Of[K comparable, V any](pairs []Pair[K, V], opts ...Option[K]) *Map[K, V] {
	m := New[K, V](opts...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}
