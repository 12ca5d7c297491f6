package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the display name for a 0-based day of week (0 = Monday).
func DayName(day int) string {
	if day < 0 || day > 6 {
		return "Unknown"
	}
	return dayNames[day]
}

// ParseClock converts "HH:MM" to minutes from midnight.
func ParseClock(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return hours*60 + minutes, nil
}

func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// SlotInput is one upsert in a weekly schedule edit. An empty ID creates a
// new slot; a non-empty ID edits the existing one.
type SlotInput struct {
	ID        string
	DayOfWeek int
	Start     string
	End       string
	Recurring bool
}

// slotsOverlap is the half-open interval test: touching endpoints do not
// overlap.
func slotsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

func validateWindow(day, start, end int) error {
	if day < 0 || day > 6 {
		return ErrBadRequest(CodeBadRequest, "Day of week must be between 0 (Monday) and 6 (Sunday).")
	}
	if start >= end {
		return ErrBadRequest(CodeEndBeforeStart, "End time must be after start time.")
	}
	return nil
}

// findConflict returns the first slot in the set that overlaps the candidate
// window on the same day, skipping the slot being edited.
func findConflict(slots []models.AvailabilitySlot, day, start, end int, excludeID string) *models.AvailabilitySlot {
	for i := range slots {
		slot := &slots[i]
		if slot.ID == excludeID || slot.DayOfWeek != day {
			continue
		}
		if slotsOverlap(start, end, slot.StartMinute, slot.EndMinute) {
			return slot
		}
	}
	return nil
}

func overlapError(conflict *models.AvailabilitySlot) error {
	return ErrConflict(CodeSlotOverlap, fmt.Sprintf(
		"This time slot overlaps with an existing availability slot (%s %s-%s).",
		DayName(conflict.DayOfWeek), FormatClock(conflict.StartMinute), FormatClock(conflict.EndMinute)))
}

// ValidateWeeklySet checks the full invariant over a mentor's slot set: at
// least one slot, each window well-formed, no pairwise overlap per day.
func ValidateWeeklySet(slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return ErrBadRequest(CodeMinimumSlots, "At least one availability slot is required.")
	}
	for i := range slots {
		if err := validateWindow(slots[i].DayOfWeek, slots[i].StartMinute, slots[i].EndMinute); err != nil {
			return err
		}
		if conflict := findConflict(slots[i+1:], slots[i].DayOfWeek, slots[i].StartMinute, slots[i].EndMinute, ""); conflict != nil {
			return overlapError(conflict)
		}
	}
	return nil
}

func ListSlots(db *sqlx.DB, mentorID string) ([]models.AvailabilitySlot, error) {
	slots := []models.AvailabilitySlot{}
	err := db.Select(&slots, `
SELECT id, mentor_id, day_of_week, start_minute, end_minute, is_recurring, created_at
FROM availability_slots
WHERE mentor_id = $1
ORDER BY day_of_week, start_minute
`, mentorID)
	return slots, err
}

// AddOrUpdateSlot inserts or edits a single slot after checking the window
// and overlap invariants against the mentor's other slots for that day.
func AddOrUpdateSlot(db *sqlx.DB, mentorID string, input SlotInput) (models.AvailabilitySlot, error) {
	start, err := ParseClock(input.Start)
	if err != nil {
		return models.AvailabilitySlot{}, ErrBadRequest(CodeBadRequest, "Invalid start time.")
	}
	end, err := ParseClock(input.End)
	if err != nil {
		return models.AvailabilitySlot{}, ErrBadRequest(CodeBadRequest, "Invalid end time.")
	}
	if err := validateWindow(input.DayOfWeek, start, end); err != nil {
		return models.AvailabilitySlot{}, err
	}

	var hasProfile bool
	if err := db.Get(&hasProfile, `SELECT EXISTS(SELECT 1 FROM mentor_profiles WHERE user_id = $1)`, mentorID); err != nil {
		return models.AvailabilitySlot{}, err
	}
	if !hasProfile {
		return models.AvailabilitySlot{}, ErrNotFound(CodeMentorNotFound, "Mentor profile not found.")
	}

	existing := []models.AvailabilitySlot{}
	if err := db.Select(&existing, `
SELECT id, mentor_id, day_of_week, start_minute, end_minute, is_recurring, created_at
FROM availability_slots
WHERE mentor_id = $1 AND day_of_week = $2
`, mentorID, input.DayOfWeek); err != nil {
		return models.AvailabilitySlot{}, err
	}
	if conflict := findConflict(existing, input.DayOfWeek, start, end, input.ID); conflict != nil {
		return models.AvailabilitySlot{}, overlapError(conflict)
	}

	now := time.Now().UTC()
	slot := models.AvailabilitySlot{
		ID:          input.ID,
		MentorID:    mentorID,
		DayOfWeek:   input.DayOfWeek,
		StartMinute: start,
		EndMinute:   end,
		IsRecurring: input.Recurring,
		CreatedAt:   now,
	}
	if slot.ID == "" {
		slot.ID = uuid.NewString()
		_, err = db.Exec(`
INSERT INTO availability_slots (id, mentor_id, day_of_week, start_minute, end_minute, is_recurring, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, slot.ID, mentorID, slot.DayOfWeek, start, end, slot.IsRecurring, now)
		return slot, err
	}
	result, err := db.Exec(`
UPDATE availability_slots
SET day_of_week = $3, start_minute = $4, end_minute = $5, is_recurring = $6
WHERE id = $1 AND mentor_id = $2
`, slot.ID, mentorID, slot.DayOfWeek, start, end, slot.IsRecurring)
	if err != nil {
		return models.AvailabilitySlot{}, err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.AvailabilitySlot{}, ErrNotFound(CodeNotFound, "Availability slot not found.")
	}
	return slot, nil
}

// ReplaceWeeklySchedule applies a batch of slot upserts and deletions in one
// transaction. The whole batch is rejected if it would leave the mentor with
// zero slots or with overlapping windows.
func ReplaceWeeklySchedule(db *sqlx.DB, mentorID string, upserts []SlotInput, deleteIDs []string) ([]models.AvailabilitySlot, error) {
	current, err := ListSlots(db, mentorID)
	if err != nil {
		return nil, err
	}

	deleted := make(map[string]bool, len(deleteIDs))
	for _, id := range deleteIDs {
		deleted[id] = true
	}
	byID := make(map[string]*models.AvailabilitySlot, len(current))
	result := make([]models.AvailabilitySlot, 0, len(current)+len(upserts))
	for _, slot := range current {
		if deleted[slot.ID] {
			continue
		}
		result = append(result, slot)
		byID[slot.ID] = &result[len(result)-1]
	}

	now := time.Now().UTC()
	inserts := []models.AvailabilitySlot{}
	updates := []models.AvailabilitySlot{}
	for _, input := range upserts {
		if input.ID != "" && deleted[input.ID] {
			continue
		}
		start, err := ParseClock(input.Start)
		if err != nil {
			return nil, ErrBadRequest(CodeBadRequest, "Invalid start time.")
		}
		end, err := ParseClock(input.End)
		if err != nil {
			return nil, ErrBadRequest(CodeBadRequest, "Invalid end time.")
		}
		if input.ID != "" {
			slot, ok := byID[input.ID]
			if !ok {
				return nil, ErrNotFound(CodeNotFound, "Availability slot not found.")
			}
			slot.DayOfWeek = input.DayOfWeek
			slot.StartMinute = start
			slot.EndMinute = end
			slot.IsRecurring = input.Recurring
			updates = append(updates, *slot)
			continue
		}
		slot := models.AvailabilitySlot{
			ID:          uuid.NewString(),
			MentorID:    mentorID,
			DayOfWeek:   input.DayOfWeek,
			StartMinute: start,
			EndMinute:   end,
			IsRecurring: input.Recurring,
			CreatedAt:   now,
		}
		result = append(result, slot)
		inserts = append(inserts, slot)
	}

	if err := ValidateWeeklySet(result); err != nil {
		return nil, err
	}

	tx, err := db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for _, id := range deleteIDs {
		if _, err := tx.Exec(`DELETE FROM availability_slots WHERE id = $1 AND mentor_id = $2`, id, mentorID); err != nil {
			return nil, err
		}
	}
	for _, slot := range updates {
		if _, err := tx.Exec(`
UPDATE availability_slots
SET day_of_week = $3, start_minute = $4, end_minute = $5, is_recurring = $6
WHERE id = $1 AND mentor_id = $2
`, slot.ID, mentorID, slot.DayOfWeek, slot.StartMinute, slot.EndMinute, slot.IsRecurring); err != nil {
			return nil, err
		}
	}
	for _, slot := range inserts {
		if _, err := tx.Exec(`
INSERT INTO availability_slots (id, mentor_id, day_of_week, start_minute, end_minute, is_recurring, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, slot.ID, mentorID, slot.DayOfWeek, slot.StartMinute, slot.EndMinute, slot.IsRecurring, slot.CreatedAt); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ListSlots(db, mentorID)
}

func DeleteSlot(db *sqlx.DB, mentorID, slotID string) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM availability_slots WHERE mentor_id = $1`, mentorID); err != nil {
		return err
	}
	if count <= 1 {
		return ErrBadRequest(CodeMinimumSlots, "At least one availability slot is required.")
	}
	result, err := db.Exec(`DELETE FROM availability_slots WHERE id = $1 AND mentor_id = $2`, slotID, mentorID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound(CodeNotFound, "Availability slot not found.")
	}
	return nil
}
