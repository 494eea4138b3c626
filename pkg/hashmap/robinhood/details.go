// Package robinhood implements an insertion ordered hash map that resolves
// collisions with open addressing and linear probing. The placement policy
// is robin hood hashing, and removals use backward shift deletion instead
// of tombstones. Some background on the technique:
//
//	01) https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
//	02) https://www.sebastiansylvan.com/post/robin-hood-hashing-should-be-your-default-hash-table-implementation/
//	03) http://codecapsule.com/2013/11/11/robin-hood-hashing/
//	04) http://codecapsule.com/2013/11/17/robin-hood-hashing-backward-shift-deletion/
//
// A Map is made of two parts. The entries live in a doubly linked list in
// the order they were inserted; that list owns them and is all iteration
// ever looks at. Next to it sits a slot table, where every slot is either
// empty or holds a reference to one list node together with that entry's
// displacement, the number of steps between the slot its hash points
// at and the slot it actually occupies.
//
// Placing an entry works like this:
//
//  1. Compute the hash and take it modulo the capacity to get the home slot.
//  2. Walk the slots linearly from there, counting the steps taken.
//  3. An empty slot ends the walk; the entry goes there.
//  4. An occupant displaced less than the walker gives up its slot, and the
//     walk continues carrying the evicted occupant instead.
//
// Once two entries are stored for every three slots the table is rebuilt
// with GrowthFactor times the capacity and every entry is placed again in
// list order, which leaves iteration order untouched.
package robinhood
