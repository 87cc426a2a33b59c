package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeCoversCountPlusSentinels(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, Width1},
		{2, Width1},
		{8, Width1},
		{254, Width1},
		{255, Width2},
		{1<<16 - 2, Width2},
		{1<<16 - 1, Width4},
		{1 << 20, Width4},
		{1<<32 - 2, Width4},
		{1<<32 - 1, Width8},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Size(c.n), "n=%d", c.n)
	}
}

func TestSizeLeavesRoomForReservedCodes(t *testing.T) {
	// The reserved codes must stay out of band for every count that
	// selects a given width: the largest alternative index fits under
	// Max, and Max < Moved < Never.
	for _, n := range []int{1, 2, 8, 254, 255, 1 << 16, 1 << 20} {
		size := Size(n)
		require.LessOrEqual(t, uint64(n-1), Max(size), "n=%d", n)
		require.Greater(t, Moved(size), Max(size), "n=%d", n)
		require.Greater(t, Never(size), Moved(size), "n=%d", n)
	}
	// A count one past a width's Max forces the next width up.
	assert.Equal(t, Width2, Size(int(Max(Width1))+2))
	assert.Equal(t, Width4, Size(int(Max(Width2))+2))
}

func TestSentinelCodes(t *testing.T) {
	assert.Equal(t, uint64(0xFF), Never(Width1))
	assert.Equal(t, uint64(0xFE), Moved(Width1))
	assert.Equal(t, uint64(0xFFFF), Never(Width2))
	assert.Equal(t, uint64(0xFFFE), Moved(Width2))
	assert.Equal(t, uint64(0xFFFFFFFF), Never(Width4))
	assert.Equal(t, ^uint64(0), Never(Width8))
	assert.Equal(t, ^uint64(0)-1, Moved(Width8))
}

func TestSizeRejectsNonPositiveCount(t *testing.T) {
	assert.Panics(t, func() { Size(0) })
	assert.Panics(t, func() { Size(-1) })
}

func TestNeverRejectsUnsupportedWidth(t *testing.T) {
	assert.Panics(t, func() { Never(3) })
}
