// packmsg demonstrates shipping a whole array as one scalar: it packs a
// short text message into a single 128-bit word, prints the word, and
// reconstructs the message from nothing but that number.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	num "github.com/shabbyrobe/go-num"

	"uintpack/uintarray"
)

// byteSequence feeds the bytes of a string to Extend one at a time.
type byteSequence struct {
	s   string
	pos int
}

func newByteSequence(s string) *byteSequence {
	return &byteSequence{s: s, pos: -1}
}

func (b *byteSequence) Next() bool {
	if b.pos+1 >= len(b.s) {
		return false
	}
	b.pos++
	return true
}

func (b *byteSequence) Value() uint64 {
	return uint64(b.s[b.pos])
}

func encode(msg string) (uintarray.UintArray, error) {
	return uintarray.New[uint8]().Extend(newByteSequence(msg))
}

func decode(word num.U128) (string, error) {
	ua, err := uintarray.FromRaw(word)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(int(ua.Len()))
	for it := ua.Iter(); it.Next(); {
		sb.WriteByte(byte(it.Value()))
	}
	return sb.String(), nil
}

func main() {
	var (
		msg      = flag.String("msg", "Hello, World!", "Message to pack, at most 15 bytes")
		showBits = flag.Bool("bits", false, "Dump the packed word bit layout")
	)
	flag.Parse()

	packed, err := encode(*msg)
	if err != nil {
		fail("failed to pack %q: %v", *msg, err)
	}

	word := packed.Raw()
	decoded, err := decode(word)
	if err != nil {
		fail("failed to unpack: %v", err)
	}

	fmt.Printf("message: %q\n", *msg)
	fmt.Printf("packed:  %s\n", word)
	fmt.Printf("decoded: %q\n", decoded)
	fmt.Printf("the whole message travels as one %s scalar\n", humanize.Bytes(uintarray.WordBytes))
	if *showBits {
		fmt.Println()
		fmt.Print(packed.Format())
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
