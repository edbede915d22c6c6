package uintarray

import (
	"math/rand"
)

const benchmarkParallelism = 4

// elementWidths lists every valid element width in ascending order.
var elementWidths = []uint{1, 2, 4, 8, 16, 32, 64}

// randomElement returns a value that fits in size bits.
func randomElement(r *rand.Rand, size uint) uint64 {
	return r.Uint64() & elemMask(size)
}

// randomFilled builds an array of the given width holding n random elements,
// clamped to the array's capacity, and returns it together with the same
// elements as a plain slice.
func randomFilled(r *rand.Rand, width uint, n int) (UintArray, []uint64) {
	ua, err := NewWithWidth(width)
	if err != nil {
		panic(err)
	}
	if n > int(ua.Cap()) {
		n = int(ua.Cap())
	}
	elems := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		v := randomElement(r, ua.Size())
		next, err := ua.Append(v)
		if err != nil {
			panic(err)
		}
		ua = next
		elems = append(elems, v)
	}
	return ua, elems
}
