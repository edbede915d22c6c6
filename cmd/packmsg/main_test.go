package main

import (
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/require"

	"uintpack/uintarray"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	for _, msg := range []string{"", "x", "Hello, World!", "fifteen bytes!!"} {
		packed, err := encode(msg)
		require.NoError(t, err)

		decoded, err := decode(packed.Raw())
		require.NoError(t, err)
		require.Equal(t, msg, decoded)
	}
}

func TestEncodeHelloWorldWord(t *testing.T) {
	t.Parallel()
	packed, err := encode("Hello, World!")
	require.NoError(t, err)
	require.Equal(t, "677275895896325563768124884732011", packed.Raw().String())
}

func TestEncodeRejectsLongMessage(t *testing.T) {
	t.Parallel()
	_, err := encode("this message does not fit in fifteen bytes")
	require.ErrorIs(t, err, uintarray.ErrCapacityExceeded)
}

func TestDecodeRejectsBadWord(t *testing.T) {
	t.Parallel()
	_, err := decode(num.U128From64(69421))
	require.ErrorIs(t, err, uintarray.ErrInvalidLength)
}
