package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(t *testing.T, start, end string) Interval {
	t.Helper()

	s, err := time.Parse(time.RFC3339, "2026-03-02T"+start+":00+03:00")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, "2026-03-02T"+end+":00+03:00")
	require.NoError(t, err)

	return Interval{Start: s, End: e}
}

func TestInterval_Overlaps(t *testing.T) {
	base := interval(t, "10:00", "12:00")

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"полное пересечение", interval(t, "10:30", "11:30"), true},
		{"пересечение слева", interval(t, "09:00", "10:30"), true},
		{"пересечение справа", interval(t, "11:30", "13:00"), true},
		{"other покрывает base", interval(t, "09:00", "13:00"), true},
		{"касание слева не пересекается", interval(t, "09:00", "10:00"), false},
		{"касание справа не пересекается", interval(t, "12:00", "13:00"), false},
		{"без пересечения", interval(t, "13:00", "14:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
		})
	}
}

func TestInterval_Subtract(t *testing.T) {
	base := interval(t, "10:00", "14:00")

	t.Run("без пересечения возвращает исходный интервал", func(t *testing.T) {
		got := base.Subtract(interval(t, "15:00", "16:00"))
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(base))
	})

	t.Run("busy в середине дает два куска", func(t *testing.T) {
		got := base.Subtract(interval(t, "11:00", "12:00"))
		require.Len(t, got, 2)
		assert.True(t, got[0].Equal(interval(t, "10:00", "11:00")))
		assert.True(t, got[1].Equal(interval(t, "12:00", "14:00")))
	})

	t.Run("busy срезает левый край", func(t *testing.T) {
		got := base.Subtract(interval(t, "09:00", "11:00"))
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(interval(t, "11:00", "14:00")))
	})

	t.Run("busy срезает правый край", func(t *testing.T) {
		got := base.Subtract(interval(t, "13:00", "15:00"))
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(interval(t, "10:00", "13:00")))
	})

	t.Run("busy покрывает весь интервал", func(t *testing.T) {
		got := base.Subtract(interval(t, "09:00", "15:00"))
		assert.Empty(t, got)
	})

	t.Run("точное совпадение границ уничтожает интервал", func(t *testing.T) {
		got := base.Subtract(base)
		assert.Empty(t, got)
	})

	t.Run("busy совпадающий краем не оставляет пустых кусков", func(t *testing.T) {
		got := base.Subtract(interval(t, "10:00", "12:00"))
		require.Len(t, got, 1)
		assert.False(t, got[0].IsEmpty())
		assert.True(t, got[0].Equal(interval(t, "12:00", "14:00")))
	})

	t.Run("суммарная длина кусков равна исходной минус пересечение", func(t *testing.T) {
		busy := interval(t, "11:00", "12:30")
		got := base.Subtract(busy)

		var total time.Duration
		for _, piece := range got {
			total += piece.Duration()
		}
		assert.Equal(t, base.Duration()-busy.Duration(), total)
	})
}

func TestBooking_CanBeCancelled(t *testing.T) {
	active := &Booking{Status: StatusActive}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, active.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}
