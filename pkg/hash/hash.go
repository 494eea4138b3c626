package hash

import (
	"hash/maphash"
	"reflect"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

var ErrUnknownHasher = errors.New("hash: unknown hasher")

// Func is a type definition for what a hash function should look like.
// It must return the same value for equal keys for as long as it is in use.
type Func[K any] func(key K) uint64

// Default returns the hasher used when none is configured. Integer kinds
// hash to their own value, string kinds use xxhash, and every other
// comparable type goes through maphash with a seed fixed at this call.
func Default[K comparable]() Func[K] {
	switch reflect.TypeFor[K]().Kind() {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if unsafe.Sizeof(uint(0)) == 4 {
			return func(key K) uint64 { return uint64(*(*uint32)(unsafe.Pointer(&key))) }
		}
		return func(key K) uint64 { return *(*uint64)(unsafe.Pointer(&key)) }
	case reflect.Int64, reflect.Uint64:
		return func(key K) uint64 { return *(*uint64)(unsafe.Pointer(&key)) }
	case reflect.Int32, reflect.Uint32:
		return func(key K) uint64 { return uint64(*(*uint32)(unsafe.Pointer(&key))) }
	case reflect.Int16, reflect.Uint16:
		return func(key K) uint64 { return uint64(*(*uint16)(unsafe.Pointer(&key))) }
	case reflect.Int8, reflect.Uint8, reflect.Bool:
		return func(key K) uint64 { return uint64(*(*uint8)(unsafe.Pointer(&key))) }
	case reflect.String:
		return func(key K) uint64 { return xxhash.Sum64String(*(*string)(unsafe.Pointer(&key))) }
	}
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// XXHash hashes strings with xxhash64
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXH3 hashes strings with xxh3
func XXH3(key string) uint64 {
	return xxh3.HashString(key)
}

// Murmur3 hashes strings with the 64 bit half of murmur3
func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

// Maphash returns a string hasher bound to a fresh random seed
func Maphash() Func[string] {
	seed := maphash.MakeSeed()
	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}

// Names lists the hashers ByName knows about
var Names = []string{"default", "xxhash", "xxh3", "murmur3", "maphash"}

// ByName returns the string hasher registered under name
func ByName(name string) (Func[string], error) {
	switch strings.ToLower(name) {
	case "", "default":
		return Default[string](), nil
	case "xxhash":
		return XXHash, nil
	case "xxh3":
		return XXH3, nil
	case "murmur3":
		return Murmur3, nil
	case "maphash":
		return Maphash(), nil
	}
	return nil, errors.Wrapf(ErrUnknownHasher, "%q (want one of %s)", name, strings.Join(Names, ", "))
}
