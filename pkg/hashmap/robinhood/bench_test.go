package robinhood

import (
	"testing"

	"github.com/scottcagno/robinhood/pkg/hash"
)

var result int

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = makeKey(i)
	}
	return keys
}

func BenchmarkMap_Insert(b *testing.B) {
	keys := benchKeys(1 << 16)
	b.ResetTimer()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		m := New[string, int]()
		for i, k := range keys {
			m.Insert(k, i)
		}
		result = m.Len()
	}
}

func benchmarkFind(b *testing.B, fn hash.Func[string]) {
	keys := benchKeys(1 << 16)
	m := New[string, int](WithHasher(fn))
	for i, k := range keys {
		m.Insert(k, i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	var v int
	for n := 0; n < b.N; n++ {
		v, _ = m.Get(keys[n&(len(keys)-1)])
	}
	result = v
}

func BenchmarkMap_Find_XXHash(b *testing.B)  { benchmarkFind(b, hash.XXHash) }
func BenchmarkMap_Find_XXH3(b *testing.B)    { benchmarkFind(b, hash.XXH3) }
func BenchmarkMap_Find_Murmur3(b *testing.B) { benchmarkFind(b, hash.Murmur3) }

func BenchmarkMap_EraseInsert(b *testing.B) {
	keys := benchKeys(1 << 12)
	m := New[string, int]()
	for i, k := range keys {
		m.Insert(k, i)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		k := keys[n&(len(keys)-1)]
		m.Erase(k)
		m.Insert(k, n)
	}
	result = m.Len()
}

func BenchmarkMap_Range(b *testing.B) {
	m := New[int, int]()
	for i := 0; i < 1<<16; i++ {
		m.Insert(i, i)
	}
	b.ResetTimer()
	var sum int
	for n := 0; n < b.N; n++ {
		for _, v := range m.All() {
			sum += v
		}
	}
	result = sum
}
