package robinhood

const (
	DefaultInitialCapacity = 1  // slots in a new or cleared map
	DefaultGrowthFactor    = 10 // capacity multiplier applied by a rebuild

	minGrowthFactor = 2

	// a rebuild starts once size/capacity reaches loadNum/loadDen
	loadNum = 2
	loadDen = 3
)

// overloaded reports whether size entries in capacity slots call for a rebuild
func overloaded(size, capacity int) bool {
	return loadDen*size >= loadNum*capacity
}
