package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "9am", "25:00", "09:61", "0900", "09:00:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClockRoundTrips(t *testing.T) {
	for _, minutes := range []int{0, 1, 540, 570, 1439} {
		parsed, err := ParseClock(FormatClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-09-14"))
	assert.False(t, ValidDate("14-09-2026"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate(""))
}
