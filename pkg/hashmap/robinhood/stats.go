package robinhood

import "fmt"

// Stats describes the shape of a Map's slot table
type Stats struct {
	Len              int     // entries stored
	Cap              int     // slots in the slot table
	LoadFactor       float64 // Len / Cap
	MaxDisplacement  int     // longest distance between an entry and its home slot
	MeanDisplacement float64 // average distance between an entry and its home slot
	Rebuilds         int     // rebuilds since creation or the last Clear
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d cap=%d load=%.2f maxdist=%d meandist=%.2f rebuilds=%d",
		s.Len, s.Cap, s.LoadFactor, s.MaxDisplacement, s.MeanDisplacement, s.Rebuilds)
}

// Stats walks the slot table and returns its current shape
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Len:             m.table.size,
		Cap:             m.Cap(),
		MaxDisplacement: m.table.maxDist(),
		Rebuilds:        m.rebuilds,
	}
	if s.Cap > 0 {
		s.LoadFactor = float64(s.Len) / float64(s.Cap)
	}
	if s.Len > 0 {
		s.MeanDisplacement = float64(m.table.sumDist()) / float64(s.Len)
	}
	return s
}

// PercentFull returns the current load factor of the map
func (m *Map[K, V]) PercentFull() float64 {
	return m.Stats().LoadFactor
}
