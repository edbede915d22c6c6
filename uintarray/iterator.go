package uintarray

// Sequence is a pull-style source of unsigned values. Next advances to the
// next value and reports whether one exists; Value returns the current one.
// Extend consumes any Sequence, which is what lets it ingest lazy or endless
// sources without materializing them.
type Sequence interface {
	Next() bool
	Value() uint64
}

// ValueIterator walks the elements of a UintArray in ascending position
// order. It satisfies Sequence, so an iterator over one array can feed
// Extend on another.
type ValueIterator struct {
	ua  UintArray
	pos uint
	cur uint64
}

// Iter returns an iterator positioned before the first element. The iterator
// holds its own copy of the array, so later operations on the source cannot
// disturb it.
func (ua UintArray) Iter() *ValueIterator {
	return &ValueIterator{ua: ua}
}

func (it *ValueIterator) Next() bool {
	v, ok := it.ua.At(it.pos)
	if !ok {
		return false
	}
	it.cur = v
	it.pos++
	return true
}

func (it *ValueIterator) Value() uint64 {
	return it.cur
}

// SliceSequence adapts a slice of values to the Sequence interface.
type SliceSequence struct {
	values []uint64
	idx    int
}

// NewSliceSequence returns a Sequence over the given values. The slice is
// not copied; callers must not mutate it while the sequence is live.
func NewSliceSequence(values []uint64) *SliceSequence {
	return &SliceSequence{values: values, idx: -1}
}

func (s *SliceSequence) Next() bool {
	if s.idx+1 >= len(s.values) {
		return false
	}
	s.idx++
	return true
}

func (s *SliceSequence) Value() uint64 {
	return s.values[s.idx]
}

// RangeSequence yields the half-open interval [lo, hi) in ascending order.
// With hi near the top of the uint64 range it is effectively endless; Extend
// still terminates on one because it stops consuming once the array fills.
type RangeSequence struct {
	next    uint64
	hi      uint64
	started bool
}

// NewRangeSequence returns a Sequence over [lo, hi). An empty interval
// yields nothing.
func NewRangeSequence(lo, hi uint64) *RangeSequence {
	return &RangeSequence{next: lo, hi: hi}
}

func (r *RangeSequence) Next() bool {
	if r.started {
		r.next++
	}
	r.started = true
	return r.next < r.hi
}

func (r *RangeSequence) Value() uint64 {
	return r.next
}
