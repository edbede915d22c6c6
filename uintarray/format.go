package uintarray

import (
	"strconv"
	"strings"
)

// Format renders the backing word as binary, most significant bit first,
// grouped for reading: a newline every 32 bits and a space at every element
// boundary of the array's width. The trailing separator after bit 0 is kept,
// so the result always ends in a newline.
func (ua UintArray) Format() string {
	hi, lo := ua.word.Raw()
	size := ua.Size()

	var sb strings.Builder
	sb.Grow(WordBits * 2)
	for i := WordBits - 1; i >= 0; i-- {
		half := lo
		bit := uint(i)
		if i >= 64 {
			half = hi
			bit = uint(i - 64)
		}
		if half>>bit&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		switch {
		case i%32 == 0:
			sb.WriteByte('\n')
		case uint(i)%size == 0:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// String renders the array for debugging: the elements in order, then
// length, capacity and element width, then the raw word in decimal.
func (ua UintArray) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for it, first := ua.Iter(), true; it.Next(); first = false {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(it.Value(), 10))
	}
	sb.WriteString("]: (")
	sb.WriteString(strconv.FormatUint(uint64(ua.Len()), 10))
	sb.WriteByte('/')
	sb.WriteString(strconv.FormatUint(uint64(ua.Cap()), 10))
	sb.WriteString(" x ")
	sb.WriteString(strconv.FormatUint(uint64(ua.Size()), 10))
	sb.WriteString(" bits) [raw=")
	sb.WriteString(ua.word.String())
	sb.WriteByte(']')
	return sb.String()
}
