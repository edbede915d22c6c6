package uintarray

import (
	"testing"

	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/require"
)

// iterWord encodes [1 2 3 4] as 4-bit elements.
const iterWord = 4399394

func TestIterYieldsAscending(t *testing.T) {
	t.Parallel()
	ua, err := FromRaw(num.U128From64(iterWord))
	require.NoError(t, err)

	var got []uint64
	for it := ua.Iter(); it.Next(); {
		got = append(got, it.Value())
	}
	require.Equal(t, []uint64{1, 2, 3, 4}, got)
}

func TestIterOnEmpty(t *testing.T) {
	t.Parallel()
	ua, err := NewWithWidth(16)
	require.NoError(t, err)
	require.False(t, ua.Iter().Next())
}

func TestIterExhaustionIsSticky(t *testing.T) {
	t.Parallel()
	ua, err := FromRaw(num.U128From64(iterWord))
	require.NoError(t, err)

	it := ua.Iter()
	for it.Next() {
	}
	require.False(t, it.Next())
	require.False(t, it.Next())
}

func TestIterRestartable(t *testing.T) {
	t.Parallel()
	ua, err := FromRaw(num.U128From64(iterWord))
	require.NoError(t, err)

	collect := func() []uint64 {
		var got []uint64
		for it := ua.Iter(); it.Next(); {
			got = append(got, it.Value())
		}
		return got
	}
	require.Equal(t, collect(), collect())
}

func TestIterSnapshotsTheArray(t *testing.T) {
	t.Parallel()
	ua, err := FromRaw(num.U128From64(iterWord))
	require.NoError(t, err)

	it := ua.Iter()
	grown, err := ua.Append(5)
	require.NoError(t, err)
	require.Equal(t, uint(5), grown.Len())

	var got []uint64
	for it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []uint64{1, 2, 3, 4}, got)
}

func TestIterFeedsExtend(t *testing.T) {
	t.Parallel()
	src, err := FromRaw(num.U128From64(iterWord))
	require.NoError(t, err)

	empty, err := NewWithWidth(4)
	require.NoError(t, err)
	dst, err := empty.Extend(src.Iter())
	require.NoError(t, err)
	require.True(t, dst.Equal(src))
}

func TestSliceSequence(t *testing.T) {
	t.Parallel()
	seq := NewSliceSequence([]uint64{5, 6})
	require.True(t, seq.Next())
	require.Equal(t, uint64(5), seq.Value())
	require.True(t, seq.Next())
	require.Equal(t, uint64(6), seq.Value())
	require.False(t, seq.Next())

	require.False(t, NewSliceSequence(nil).Next())
}

func TestRangeSequence(t *testing.T) {
	t.Parallel()
	var got []uint64
	for seq := NewRangeSequence(3, 6); seq.Next(); {
		got = append(got, seq.Value())
	}
	require.Equal(t, []uint64{3, 4, 5}, got)

	require.False(t, NewRangeSequence(5, 5).Next())
	require.False(t, NewRangeSequence(6, 5).Next())
}
