package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

func slot(id string, day, start, end int) models.AvailabilitySlot {
	return models.AvailabilitySlot{ID: id, DayOfWeek: day, StartMinute: start, EndMinute: end}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"9:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00", "09:05", "14:30", "23:59"} {
		minute, err := ParseClock(value)
		require.NoError(t, err)
		assert.Equal(t, value, FormatClock(minute))
	}
}

func TestSlotsOverlapTouchingEndpoints(t *testing.T) {
	// 09:00-10:00 next to 10:00-11:00 share a boundary minute but not time.
	assert.False(t, slotsOverlap(540, 600, 600, 660))
	assert.False(t, slotsOverlap(600, 660, 540, 600))
}

func TestSlotsOverlapPartial(t *testing.T) {
	// 09:00-10:00 against 09:30-10:30.
	assert.True(t, slotsOverlap(540, 600, 570, 630))
	assert.True(t, slotsOverlap(570, 630, 540, 600))
	// Containment counts too.
	assert.True(t, slotsOverlap(540, 660, 570, 600))
}

func TestValidateWindowRejectsInvertedWindow(t *testing.T) {
	err := validateWindow(0, 600, 540)
	require.Error(t, err)
	assert.Equal(t, CodeEndBeforeStart, ErrCode(err))

	err = validateWindow(0, 600, 600)
	require.Error(t, err)
	assert.Equal(t, CodeEndBeforeStart, ErrCode(err))
}

func TestValidateWindowRejectsBadDay(t *testing.T) {
	assert.Error(t, validateWindow(-1, 540, 600))
	assert.Error(t, validateWindow(7, 540, 600))
	assert.NoError(t, validateWindow(6, 540, 600))
}

func TestFindConflictSameDayOnly(t *testing.T) {
	existing := []models.AvailabilitySlot{
		slot("a", 0, 540, 600),
		slot("b", 1, 540, 600),
	}
	// Monday 09:30-10:30 collides with Monday, not Tuesday.
	conflict := findConflict(existing, 0, 570, 630, "")
	require.NotNil(t, conflict)
	assert.Equal(t, "a", conflict.ID)

	assert.Nil(t, findConflict(existing, 2, 570, 630, ""))
}

func TestFindConflictSkipsEditedSlot(t *testing.T) {
	existing := []models.AvailabilitySlot{slot("a", 0, 540, 600)}
	// Widening the same slot must not collide with itself.
	assert.Nil(t, findConflict(existing, 0, 540, 660, "a"))
}

func TestValidateWeeklySetRequiresOneSlot(t *testing.T) {
	err := ValidateWeeklySet(nil)
	require.Error(t, err)
	assert.Equal(t, CodeMinimumSlots, ErrCode(err))
}

func TestValidateWeeklySetAcceptsAdjacentSlots(t *testing.T) {
	set := []models.AvailabilitySlot{
		slot("a", 0, 540, 600),
		slot("b", 0, 600, 660),
		slot("c", 4, 540, 600),
	}
	assert.NoError(t, ValidateWeeklySet(set))
}

func TestValidateWeeklySetRejectsOverlap(t *testing.T) {
	set := []models.AvailabilitySlot{
		slot("a", 0, 540, 600),
		slot("b", 0, 570, 630),
	}
	err := ValidateWeeklySet(set)
	require.Error(t, err)
	assert.Equal(t, CodeSlotOverlap, ErrCode(err))
	assert.Contains(t, err.Error(), "Monday")
}

func TestOverlapErrorNamesConflictingSlot(t *testing.T) {
	conflict := slot("a", 2, 540, 600)
	err := overlapError(&conflict)
	assert.Contains(t, err.Error(), "Wednesday 09:00-10:00")
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "Unknown", DayName(7))
	assert.Equal(t, "Unknown", DayName(-1))
}
