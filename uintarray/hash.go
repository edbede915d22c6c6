package uintarray

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/zeebo/xxh3"
)

// Hash returns a 64-bit FNV-1a hash of the array. The backing word already
// carries element width and length, so arrays that differ only in those hash
// differently.
func (ua UintArray) Hash() uint64 {
	h := fnv.New64a()
	buf := ua.Bytes()
	h.Write(buf[:])
	return h.Sum64()
}

// HashWithSeed returns a seeded 64-bit xxh3 hash of the array. Distinct
// seeds give independent hash families.
func (ua UintArray) HashWithSeed(seed uint64) uint64 {
	h := xxh3.New()

	var seedBuf [8]byte
	binary.LittleEndian.PutUint64(seedBuf[:], seed)
	h.Write(seedBuf[:])

	buf := ua.Bytes()
	h.Write(buf[:])

	return h.Sum64()
}
