package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, in, out string) DateRange {
	t.Helper()
	r, err := NewDateRange(date(in), date(out))
	require.NoError(t, err)
	return r
}

func TestNewDateRange_RejectsInvertedAndZeroNights(t *testing.T) {
	_, err := NewDateRange(date("2024-06-20"), date("2024-06-15"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(date("2024-06-15"), date("2024-06-15"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestNewDateRange_TruncatesToMidnightUTC(t *testing.T) {
	in := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)
	out := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	r, err := NewDateRange(in, out)
	require.NoError(t, err)
	assert.Equal(t, date("2024-06-15"), r.CheckIn)
	assert.Equal(t, date("2024-06-20"), r.CheckOut)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name    string
		a, b    DateRange
		overlap bool
	}{
		{
			name:    "identical ranges",
			a:       mustRange(t, "2024-06-15", "2024-06-20"),
			b:       mustRange(t, "2024-06-15", "2024-06-20"),
			overlap: true,
		},
		{
			name:    "b fully inside a",
			a:       mustRange(t, "2024-06-10", "2024-06-25"),
			b:       mustRange(t, "2024-06-15", "2024-06-20"),
			overlap: true,
		},
		{
			name:    "partial overlap",
			a:       mustRange(t, "2024-06-15", "2024-06-20"),
			b:       mustRange(t, "2024-06-18", "2024-06-22"),
			overlap: true,
		},
		{
			name:    "shared boundary day conflicts",
			a:       mustRange(t, "2024-06-15", "2024-06-20"),
			b:       mustRange(t, "2024-06-20", "2024-06-25"),
			overlap: true,
		},
		{
			name:    "one day apart",
			a:       mustRange(t, "2024-06-15", "2024-06-19"),
			b:       mustRange(t, "2024-06-20", "2024-06-25"),
			overlap: false,
		},
		{
			name:    "fully disjoint",
			a:       mustRange(t, "2024-06-01", "2024-06-05"),
			b:       mustRange(t, "2024-06-20", "2024-06-25"),
			overlap: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlap, tt.a.Overlaps(tt.b))
			// overlap must be symmetric
			assert.Equal(t, tt.overlap, tt.b.Overlaps(tt.a))
		})
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 5, mustRange(t, "2024-06-15", "2024-06-20").Nights())
	assert.Equal(t, 1, mustRange(t, "2024-06-15", "2024-06-16").Nights())
}
