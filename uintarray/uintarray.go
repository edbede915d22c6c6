// Package uintarray packs a fixed-capacity array of small unsigned values
// into a single 128-bit word.
package uintarray

import (
	"fmt"
	"log"
	"math/bits"
	"unsafe"

	num "github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Field layout of the packed word, least significant bits first: a 3-bit
// size-class holding log2 of the element width, a 5-bit length field, and the
// data region filling the rest of the word.
const (
	sizeBits = 3
	lenBits  = 5
	metaBits = sizeBits + lenBits

	sizeMask = 1<<sizeBits - 1
	lenMask  = (1<<lenBits - 1) << sizeBits
)

const (
	// WordBits is the fixed width of the backing word.
	WordBits = 128

	// MaxWidth is the widest element a word can hold, half the word width.
	MaxWidth = WordBits / 2

	// MaxLen is the structural ceiling imposed by the 5-bit length field.
	// For 1- and 2-bit elements it is lower than the data region quotient
	// and therefore bounds the capacity.
	MaxLen = 1<<lenBits - 1

	dataBits = WordBits - metaBits
)

// UintArray is a fixed-capacity array of small unsigned values packed into a
// single 128-bit word together with its own element width and length. The
// element width is set at construction, is always a power of two, and never
// changes for a given instance.
//
// The zero value is an empty array of 1-bit elements. Every method treats
// the receiver as immutable: mutators return a new UintArray and never touch
// the one they were called on, so instances move across goroutines as freely
// as any other scalar.
type UintArray struct {
	word num.U128
}

// NewWithWidth returns an empty UintArray storing elements of the given bit
// width. The width must be a power of two no larger than MaxWidth.
func NewWithWidth(width uint) (UintArray, error) {
	if width > MaxWidth {
		return UintArray{}, fmt.Errorf("%w: %d bits", ErrSizeTooLarge, width)
	}
	if width == 0 || width&(width-1) != 0 {
		return UintArray{}, fmt.Errorf("%w: %d bits", ErrNotPowerOfTwo, width)
	}
	return UintArray{word: num.U128From64(uint64(bits.TrailingZeros(width)))}, nil
}

// New returns an empty UintArray sized for the natural bit width of T, so
// New[uint8]() stores byte-sized elements. Every Go unsigned type has a
// power-of-two width no larger than MaxWidth, so construction cannot fail.
func New[T constraints.Unsigned]() UintArray {
	var zero T
	ua, err := NewWithWidth(uint(unsafe.Sizeof(zero)) * 8)
	if err != nil {
		log.Panicf("uintarray: impossible element width for %T: %v", zero, err)
	}
	return ua
}

// FromRaw wraps an existing packed word, validating that the encoded length
// does not exceed the capacity implied by the encoded size-class. Stored
// element values are not re-checked against the element width: the mutation
// operations cannot produce oversized elements, and a caller handing over an
// arbitrary word takes responsibility for its data region.
func FromRaw(word num.U128) (UintArray, error) {
	ua := UintArray{word: word}
	if ua.Len() > ua.Cap() {
		return UintArray{}, fmt.Errorf("%w: length=%d cap=%d", ErrInvalidLength, ua.Len(), ua.Cap())
	}
	return ua, nil
}

// Raw returns the backing word. Two parties that agree on the word width can
// exchange whole arrays by exchanging this single value; size-class and
// length travel inside it.
func (ua UintArray) Raw() num.U128 {
	return ua.word
}

// Size returns the element width in bits.
func (ua UintArray) Size() uint {
	_, lo := ua.word.Raw()
	return 1 << (lo & sizeMask)
}

// Len returns the number of elements currently stored.
func (ua UintArray) Len() uint {
	_, lo := ua.word.Raw()
	return uint(lo&lenMask) >> sizeBits
}

// Cap returns how many elements the array can hold: the data region divided
// by the element width, bounded by MaxLen.
func (ua UintArray) Cap() uint {
	c := uint(dataBits) / ua.Size()
	if c > MaxLen {
		return MaxLen
	}
	return c
}

// IsEmpty reports whether the array holds no elements.
func (ua UintArray) IsEmpty() bool {
	return ua.Len() == 0
}

// At returns the element at pos, zero-indexed. The second result is false
// when pos is out of bounds.
func (ua UintArray) At(pos uint) (uint64, bool) {
	if pos >= ua.Len() {
		return 0, false
	}
	size := ua.Size()
	return ua.slot(metaBits+pos*size, size), true
}

// Equal reports whether both arrays are backed by an identical word. Element
// width and length live inside the word, so they take part in the comparison.
func (ua UintArray) Equal(other UintArray) bool {
	return ua.word.Equal(other.word)
}

// slot extracts the size-bit value stored at the given bit offset. After the
// shift the element lies entirely within the low half of the word.
func (ua UintArray) slot(offset, size uint) uint64 {
	_, lo := ua.word.Rsh(offset).Raw()
	return lo & elemMask(size)
}

// setLen returns the word with its length field replaced. The metadata lives
// in the low byte, so only the low half is touched.
func (ua UintArray) setLen(n uint) num.U128 {
	hi, lo := ua.word.Raw()
	return num.U128FromRaw(hi, lo&^uint64(lenMask)|uint64(n)<<sizeBits)
}

// elemMask returns the all-ones mask for a single element of the given
// width. Widths are at most 64, so the mask fits a uint64.
func elemMask(size uint) uint64 {
	if size >= 64 {
		return ^uint64(0)
	}
	return 1<<size - 1
}

// lowMask returns a word with the low n bits set.
func lowMask(n uint) num.U128 {
	switch {
	case n == 0:
		return num.U128{}
	case n < 64:
		return num.U128FromRaw(0, 1<<n-1)
	case n < WordBits:
		return num.U128FromRaw(1<<(n-64)-1, ^uint64(0))
	default:
		return num.U128FromRaw(^uint64(0), ^uint64(0))
	}
}
