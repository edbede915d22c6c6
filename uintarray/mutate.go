package uintarray

import (
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// checkInsert validates a single-element insertion. Capacity is checked
// before the value so that an oversized item on a full array reports
// ErrCapacityExceeded.
func (ua UintArray) checkInsert(item uint64) error {
	if ua.Len() >= ua.Cap() {
		return fmt.Errorf("%w: %d elements of %d bits", ErrCapacityExceeded, ua.Cap(), ua.Size())
	}
	if item > elemMask(ua.Size()) {
		return fmt.Errorf("%w: %d needs more than %d bits", ErrValueOutOfRange, item, ua.Size())
	}
	return nil
}

// Append returns a copy of the array with item placed after the last
// element. It fails with ErrCapacityExceeded when the array is full and with
// ErrValueOutOfRange when item does not fit the element width.
func (ua UintArray) Append(item uint64) (UintArray, error) {
	if err := ua.checkInsert(item); err != nil {
		return UintArray{}, err
	}
	offset := metaBits + ua.Len()*ua.Size()
	word := ua.setLen(ua.Len() + 1).Or(num.U128From64(item).Lsh(offset))
	return UintArray{word: word}, nil
}

// Insert returns a copy of the array with item stored at pos and every
// element from pos onward shifted one slot up. Positions past the end are
// clamped to the end, so inserting at Len() behaves like Append. The same
// errors as Append apply.
func (ua UintArray) Insert(pos uint, item uint64) (UintArray, error) {
	if err := ua.checkInsert(item); err != nil {
		return UintArray{}, err
	}
	length := ua.Len()
	if pos > length {
		pos = length
	}
	size := ua.Size()
	offset := metaBits + pos*size

	// Split the word at the insertion offset: everything below stays put,
	// everything above moves up one slot, and the new item lands in the gap.
	keep := lowMask(offset)
	word := ua.setLen(length + 1).And(keep).
		Or(ua.word.And(keep.Not()).Lsh(size)).
		Or(num.U128From64(item).Lsh(offset))
	return UintArray{word: word}, nil
}

// Pop returns a copy of the array with the element at pos removed, along
// with the removed value. When pos is out of bounds the receiver is returned
// unchanged and the final result is false.
func (ua UintArray) Pop(pos uint) (UintArray, uint64, bool) {
	if pos >= ua.Len() {
		return ua, 0, false
	}
	size := ua.Size()
	offset := metaBits + pos*size
	item := ua.slot(offset, size)
	return UintArray{word: ua.dropSlot(offset, size)}, item, true
}

// Remove returns a copy of the array with the first occurrence of item
// removed. When item is absent the receiver is returned unchanged.
func (ua UintArray) Remove(item uint64) UintArray {
	pos, ok := ua.Index(item)
	if !ok {
		return ua
	}
	size := ua.Size()
	return UintArray{word: ua.dropSlot(metaBits+pos*size, size)}
}

// dropSlot closes the gap left by the slot at offset: bits below stay,
// bits above shift down one slot. The dropped slot rides along with the
// shifted half and lands below offset, so that half is masked once more to
// discard it.
func (ua UintArray) dropSlot(offset, size uint) num.U128 {
	keep := lowMask(offset)
	return ua.setLen(ua.Len() - 1).And(keep).
		Or(ua.word.And(keep.Not()).Rsh(size).And(keep.Not()))
}

// Clear returns an empty array with the same element width.
func (ua UintArray) Clear() UintArray {
	_, lo := ua.word.Raw()
	return UintArray{word: num.U128From64(lo & sizeMask)}
}

// Extend returns a copy of the array with every value produced by seq
// appended in order. The sequence is consumed in a single pass: as soon as
// it yields more values than the remaining capacity holds, Extend stops
// consuming and fails with ErrCapacityExceeded, which also bounds the work
// done on endless sequences. Values are width-checked once after
// consumption; when both failures apply, capacity wins. On any error the
// receiver is left usable and seq is partially consumed.
func (ua UintArray) Extend(seq Sequence) (UintArray, error) {
	size := ua.Size()
	length := ua.Len()
	remaining := ua.Cap() - length

	var items num.U128
	var max uint64
	var consumed uint
	for seq.Next() {
		if consumed >= remaining {
			return UintArray{}, fmt.Errorf("%w: sequence exceeds %d free slots", ErrCapacityExceeded, remaining)
		}
		v := seq.Value()
		if v > max {
			max = v
		}
		items = items.Or(num.U128From64(v).Lsh(consumed * size))
		consumed++
	}
	if max > elemMask(size) {
		return UintArray{}, fmt.Errorf("%w: %d needs more than %d bits", ErrValueOutOfRange, max, size)
	}
	word := ua.setLen(length + consumed).Or(items.Lsh(metaBits + length*size))
	return UintArray{word: word}, nil
}

// ExtendValues appends the given values in order. It is Extend over a slice.
func (ua UintArray) ExtendValues(items ...uint64) (UintArray, error) {
	return ua.Extend(NewSliceSequence(items))
}
