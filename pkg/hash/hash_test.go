package hash

import (
	"fmt"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotID int32

type point struct {
	x, y int
}

func TestDefault_Integers(t *testing.T) {
	assert.Equal(t, uint64(42), Default[int]()(42))
	assert.Equal(t, uint64(42), Default[uint8]()(42))
	assert.Equal(t, uint64(7), Default[slotID]()(7))
	assert.Equal(t, uint64(1<<40), Default[int64]()(1<<40))
	assert.Equal(t, uint64(1), Default[bool]()(true))
	assert.Equal(t, uint64(0), Default[bool]()(false))
	// negative values keep their two's complement bits
	assert.Equal(t, uint64(0xffffffff), Default[int32]()(-1))
}

func TestDefault_Strings(t *testing.T) {
	type name string
	assert.Equal(t, xxhash.Sum64String("robin"), Default[string]()("robin"))
	assert.Equal(t, xxhash.Sum64String("hood"), Default[name]()("hood"))
}

func TestDefault_Comparable(t *testing.T) {
	fn := Default[point]()
	assert.Equal(t, fn(point{1, 2}), fn(point{1, 2}))
	assert.NotEqual(t, fn(point{1, 2}), fn(point{2, 1}))
}

func Test_collisions(t *testing.T) {
	for _, name := range Names {
		fn, err := ByName(name)
		require.NoError(t, err)
		set := make(map[uint64]string, 1000)
		var coll int
		for i := 0; i < 1000; i++ {
			word := fmt.Sprintf("key-%06d", i)
			h := fn(word)
			assert.Equal(t, h, fn(word), "%s is not deterministic", name)
			if _, ok := set[h]; ok {
				coll++
			}
			set[h] = word
		}
		assert.Zero(t, coll, "%s collided", name)
	}
}

func TestByName_Unknown(t *testing.T) {
	fn, err := ByName("crc32")
	assert.Nil(t, fn)
	assert.True(t, errors.Is(err, ErrUnknownHasher))
	assert.Contains(t, err.Error(), "crc32")
}
