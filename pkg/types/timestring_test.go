package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeString
		wantErr bool
	}{
		{"10:00", "10:00", false},
		{"00:00", "00:00", false},
		{"23:59", "23:59", false},
		{"9:30", "", true}, // час без ведущего нуля не принимается
		{"24:00", "", true},
		{"10:60", "", true},
		{"10", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	got := NewTimeString(time.Date(2026, 3, 2, 9, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), got)
}

func TestTimeString_Compare(t *testing.T) {
	early := TimeString("09:30")
	late := TimeString("10:00")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("сдвиг внутри дня", func(t *testing.T) {
		got, err := TimeString("10:00").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), got)
	})

	t.Run("переход через полночь не поддерживается", func(t *testing.T) {
		_, err := TimeString("23:00").AddMinutes(90)
		require.Error(t, err)
	})
}

func TestTimeString_OnDate(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("10:00").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, loc), got)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("колонка TIME приходит как HH:MM:SS", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:00:00"))
		assert.Equal(t, TimeString("10:00"), ts)
	})

	t.Run("байтовое представление", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("22:30:00")))
		assert.Equal(t, TimeString("22:30"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 3, 2, 14, 15, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:15"), ts)
	})

	t.Run("nil очищает значение", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	require.Error(t, err)
}
