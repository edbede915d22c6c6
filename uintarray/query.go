package uintarray

// Index returns the position of the first element equal to item. The second
// result is false when no element matches.
func (ua UintArray) Index(item uint64) (uint, bool) {
	size := ua.Size()
	for pos, length := uint(0), ua.Len(); pos < length; pos++ {
		if ua.slot(metaBits+pos*size, size) == item {
			return pos, true
		}
	}
	return 0, false
}

// Count returns how many elements equal item.
func (ua UintArray) Count(item uint64) uint64 {
	return ua.Aggregate(func(v uint64) uint64 {
		if v == item {
			return 1
		}
		return 0
	})
}

// Aggregate maps every element through f in ascending position order and
// returns the sum of the results. With the identity function it sums the
// array.
func (ua UintArray) Aggregate(f func(uint64) uint64) uint64 {
	size := ua.Size()
	var sum uint64
	for pos, length := uint(0), ua.Len(); pos < length; pos++ {
		sum += f(ua.slot(metaBits+pos*size, size))
	}
	return sum
}
