package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubridge/EduBridge-BookingService/pkg/types"
)

func TestInitialStatus(t *testing.T) {
	tests := []struct {
		name      string
		occupancy int
		max       int
		want      BookingStatus
	}{
		{"free capacity", 1, 2, StatusConfirmed},
		{"empty slot", 0, 10, StatusConfirmed},
		{"exactly full", 2, 2, StatusPending},
		{"over capacity", 5, 2, StatusPending},
		{"zero max always pending", 0, 0, StatusPending},
		{"negative max always pending", 0, -3, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitialStatus(tt.occupancy, tt.max))
		})
	}
}

func TestBookingPredicates(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	modified := &Booking{Status: StatusModified}
	pending := &Booking{Status: StatusPending}
	cancelled := &Booking{Status: StatusCancelled}

	assert.True(t, confirmed.IsActive())
	assert.True(t, modified.IsActive())
	assert.False(t, pending.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, pending.IsPending())
	assert.False(t, confirmed.IsPending())

	assert.True(t, confirmed.CanBeCancelled())
	assert.True(t, pending.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus(BookingStatus("completed")))
	assert.False(t, IsValidStatus(BookingStatus("")))
}

func TestScheduleHasSlot(t *testing.T) {
	schedule := Schedule{
		"2025-06-01": {"2:00 PM": "Room A", "4:00 PM": "Room B"},
		"2025-06-02": {"10:00": "Room C"},
	}

	assert.True(t, schedule.HasSlot("2025-06-01", "2:00 PM"))
	assert.False(t, schedule.HasSlot("2025-06-01", "3:00 PM"))
	assert.False(t, schedule.HasSlot("2025-06-03", "2:00 PM"))

	assert.Equal(t, "Room A", schedule.PlaceFor("2025-06-01", "2:00 PM"))
	assert.Equal(t, "", schedule.PlaceFor("2025-06-03", "2:00 PM"))
}

func TestScheduleSlotKeys(t *testing.T) {
	schedule := Schedule{
		"2025-06-02": {"10:00": "Room C"},
		"2025-06-01": {"4:00 PM": "Room B", "2:00 PM": "Room A"},
	}

	keys := schedule.SlotKeys(7)
	require.Len(t, keys, 3)

	// Порядок детерминирован: по дате, затем по метке времени
	assert.Equal(t, SlotKey{TeacherID: 7, Date: "2025-06-01", Time: "2:00 PM", Place: "Room A"}, keys[0])
	assert.Equal(t, SlotKey{TeacherID: 7, Date: "2025-06-01", Time: "4:00 PM", Place: "Room B"}, keys[1])
	assert.Equal(t, SlotKey{TeacherID: 7, Date: "2025-06-02", Time: "10:00", Place: "Room C"}, keys[2])
}

func TestScheduleScanValue(t *testing.T) {
	original := Schedule{
		"2025-06-01": {"2:00 PM": "Room A"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned Schedule
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var empty Schedule
	require.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestBookingSlot(t *testing.T) {
	b := &Booking{
		TeacherID: 3,
		Date:      types.DateString("2025-06-01"),
		Time:      types.TimeLabel("2:00 PM"),
		Place:     "Room A",
	}

	assert.Equal(t, SlotKey{TeacherID: 3, Date: "2025-06-01", Time: "2:00 PM", Place: "Room A"}, b.Slot())
}

func TestRatingAggregateDisplay(t *testing.T) {
	assert.Equal(t, 4.5, RatingAggregate{Sum: 4.5, Count: 10}.DisplayRating())
	assert.Equal(t, 5.0, RatingAggregate{Sum: 8.2, Count: 20}.DisplayRating())
	assert.Equal(t, 0.0, RatingAggregate{}.DisplayRating())
}

func TestNormalizeRatingValue(t *testing.T) {
	assert.InDelta(t, 0.5, NormalizeRatingValue(5), 1e-9)
	assert.InDelta(t, 0.1, NormalizeRatingValue(1), 1e-9)
}
