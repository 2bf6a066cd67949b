package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLabelClock(t *testing.T) {
	tests := []struct {
		label        string
		hour, minute int
		second       int
	}{
		{"2:30 PM", 14, 30, 0},
		{"2:30 pm", 14, 30, 0},
		{"12:00 AM", 0, 0, 0},
		{"12:00 PM", 12, 0, 0},
		{"14:30", 14, 30, 0},
		{"09:05", 9, 5, 0},
		{"14:30:15", 14, 30, 15},
		{" 9:00 AM ", 9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hour, minute, second, err := TimeLabel(tt.label).Clock()
			require.NoError(t, err)
			assert.Equal(t, tt.hour, hour)
			assert.Equal(t, tt.minute, minute)
			assert.Equal(t, tt.second, second)
		})
	}
}

func TestTimeLabelClockInvalid(t *testing.T) {
	for _, label := range []string{"", "25:00", "half past two", "14h30", "2 PM"} {
		t.Run(label, func(t *testing.T) {
			_, _, _, err := TimeLabel(label).Clock()
			assert.ErrorIs(t, err, ErrInvalidTimeLabel)
		})
	}
}

func TestTimeLabelAt(t *testing.T) {
	cairo, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, cairo)
	got, err := TimeLabel("2:00 PM").At(date, cairo)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 14, 0, 0, 0, cairo), got)
}

func TestTimeLabelIsZero(t *testing.T) {
	assert.True(t, TimeLabel("").IsZero())
	assert.True(t, TimeLabel("   ").IsZero())
	assert.False(t, TimeLabel("14:30").IsZero())
}

func TestDateString(t *testing.T) {
	d := DateString("2025-06-01")
	require.NoError(t, d.Validate())

	parsed, err := d.Parse(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), parsed)

	assert.ErrorIs(t, DateString("01/06/2025").Validate(), ErrInvalidDateString)
	assert.ErrorIs(t, DateString("").Validate(), ErrInvalidDateString)
}
