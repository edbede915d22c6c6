package uintarray

import (
	"encoding/binary"
	"fmt"

	num "github.com/shabbyrobe/go-num"
)

// WordBytes is the size of a serialized array.
const WordBytes = WordBits / 8

// Bytes returns the backing word as WordBytes little-endian bytes, low half
// first. The encoding is the whole array: width, length and data.
func (ua UintArray) Bytes() [WordBytes]byte {
	hi, lo := ua.word.Raw()
	var buf [WordBytes]byte
	binary.LittleEndian.PutUint64(buf[:8], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)
	return buf
}

// FromBytes decodes an array serialized by Bytes, applying the same length
// validation as FromRaw.
func FromBytes(data []byte) (UintArray, error) {
	if len(data) < WordBytes {
		return UintArray{}, fmt.Errorf("uintarray: short input: %d bytes, need %d", len(data), WordBytes)
	}
	lo := binary.LittleEndian.Uint64(data[:8])
	hi := binary.LittleEndian.Uint64(data[8:WordBytes])
	return FromRaw(num.U128FromRaw(hi, lo))
}

// MarshalText encodes the backing word in decimal.
func (ua UintArray) MarshalText() ([]byte, error) {
	return []byte(ua.word.String()), nil
}

// UnmarshalText decodes a decimal word produced by MarshalText and validates
// it like FromRaw.
func (ua *UintArray) UnmarshalText(text []byte) error {
	word, accurate, err := num.U128FromString(string(text))
	if err != nil {
		return fmt.Errorf("uintarray: parse %q: %w", text, err)
	}
	if !accurate {
		return fmt.Errorf("uintarray: parse %q: value does not fit 128 bits", text)
	}
	parsed, err := FromRaw(word)
	if err != nil {
		return err
	}
	*ua = parsed
	return nil
}
