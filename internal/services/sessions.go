package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

const (
	StatusRequested = "requested"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	ActionAccept   = "accept"
	ActionReject   = "reject"
	ActionCancel   = "cancel"
	ActionComplete = "complete"
)

const (
	MinSessionMinutes = 15
	MaxSessionMinutes = 120
)

func IsTerminalStatus(status string) bool {
	switch status {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SessionActor describes the caller's relation to one specific session.
type SessionActor struct {
	IsStudent bool
	IsMentor  bool
	IsAdmin   bool
}

// NextSessionStatus resolves one lifecycle step:
//
//	requested -> accepted | rejected  (session mentor)
//	requested -> cancelled            (either party)
//	accepted  -> cancelled            (either party)
//	accepted  -> completed            (admin/batch)
//
// Terminal statuses accept no further transitions.
func NextSessionStatus(current, action string, actor SessionActor) (string, error) {
	if action == ActionComplete {
		if !actor.IsAdmin {
			return "", ErrForbidden(CodeNotAuthorized, "Not permitted.")
		}
	} else if !actor.IsStudent && !actor.IsMentor {
		return "", ErrForbidden(CodeNotAuthorized, "Not permitted.")
	}
	if IsTerminalStatus(current) {
		return "", ErrConflict(CodeSessionTerminal, "Session is already "+current+" and cannot change status.")
	}
	switch {
	case current == StatusRequested && action == ActionAccept && actor.IsMentor:
		return StatusAccepted, nil
	case current == StatusRequested && action == ActionReject && actor.IsMentor:
		return StatusRejected, nil
	case current == StatusRequested && action == ActionCancel:
		return StatusCancelled, nil
	case current == StatusAccepted && action == ActionCancel:
		return StatusCancelled, nil
	case current == StatusAccepted && action == ActionComplete && actor.IsAdmin:
		return StatusCompleted, nil
	}
	return "", ErrBadRequest(CodeInvalidTransition, "Invalid status change.")
}

// ValidateBookingInput checks the time constraints against the given clock.
// Runs before any mentor lookup, so bad input fails the same way whether or
// not the mentor exists.
func ValidateBookingInput(scheduledTime time.Time, durationMinutes int, now time.Time) error {
	if durationMinutes < MinSessionMinutes || durationMinutes > MaxSessionMinutes {
		return ErrBadRequest(CodeInvalidDuration, "Duration must be between 15 and 120 minutes.")
	}
	if scheduledTime.Before(now) {
		return ErrBadRequest(CodePastSchedule, "Scheduled time cannot be in the past.")
	}
	return nil
}

// BookSession creates a session request. The student and mentor bindings come
// from the call context, never from client-supplied role fields, and the
// status is fixed at requested. Declared availability windows are not
// consulted; callers must not assume conflict-freedom.
func BookSession(db *sqlx.DB, studentID, mentorID, title, description string, scheduledTime time.Time, durationMinutes int) (models.Session, error) {
	if err := ValidateBookingInput(scheduledTime, durationMinutes, time.Now().UTC()); err != nil {
		return models.Session{}, err
	}
	isMentor, err := IsMentor(db, mentorID)
	if err != nil {
		return models.Session{}, err
	}
	if !isMentor {
		return models.Session{}, ErrNotFound(CodeMentorNotFound, "Selected mentor does not exist or is not available.")
	}

	now := time.Now().UTC()
	session := models.Session{
		ID:              uuid.NewString(),
		StudentID:       studentID,
		MentorID:        mentorID,
		Title:           title,
		Description:     description,
		Status:          StatusRequested,
		ScheduledTime:   scheduledTime.UTC(),
		DurationMinutes: durationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	_, err = db.Exec(`
INSERT INTO sessions (id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
`, session.ID, session.StudentID, session.MentorID, session.Title, session.Description, session.Status, session.ScheduledTime, session.DurationMinutes, now)
	return session, err
}

func GetSession(db *sqlx.DB, sessionID string) (models.Session, error) {
	var session models.Session
	err := db.Get(&session, `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE id = $1
`, sessionID)
	if err != nil {
		return models.Session{}, ErrNotFound(CodeNotFound, "Session not found.")
	}
	return session, nil
}

// TransitionSession applies one lifecycle action on behalf of an actor. For
// participant actions the actor must be exactly the bound student or mentor;
// complete additionally requires the admin flag.
func TransitionSession(db *sqlx.DB, sessionID, actorID string, actorIsAdmin bool, action string) (models.Session, error) {
	session, err := GetSession(db, sessionID)
	if err != nil {
		return models.Session{}, err
	}
	actor := SessionActor{
		IsStudent: actorID == session.StudentID,
		IsMentor:  actorID == session.MentorID,
		IsAdmin:   actorIsAdmin,
	}
	next, err := NextSessionStatus(session.Status, action, actor)
	if err != nil {
		return models.Session{}, err
	}
	now := time.Now().UTC()
	_, err = db.Exec(`UPDATE sessions SET status = $2, updated_at = $3 WHERE id = $1`, sessionID, next, now)
	if err != nil {
		return models.Session{}, err
	}
	session.Status = next
	session.UpdatedAt = now
	return session, nil
}

// DeleteSession removes the row outright. This is the mentor's explicit
// delete affordance, distinct from the cancel transition.
func DeleteSession(db *sqlx.DB, sessionID, mentorID string) error {
	result, err := db.Exec(`DELETE FROM sessions WHERE id = $1 AND mentor_id = $2`, sessionID, mentorID)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound(CodeNotFound, "Session not found.")
	}
	return nil
}

// ListUserSessions returns every session the user is a party to, on either
// side, newest scheduled first. An empty status filters nothing.
func ListUserSessions(db *sqlx.DB, userID, status string) ([]models.Session, error) {
	sessions := []models.Session{}
	query := `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE (student_id = $1 OR mentor_id = $1)`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY scheduled_time DESC`
	err := db.Select(&sessions, query, args...)
	return sessions, err
}

// CompleteAcceptedSessions is the admin batch action: marks the given
// accepted sessions completed and reports how many changed.
func CompleteAcceptedSessions(db *sqlx.DB, sessionIDs []string) (int, error) {
	if len(sessionIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(`
UPDATE sessions SET status = ?, updated_at = ? WHERE id IN (?) AND status = ?
`, StatusCompleted, time.Now().UTC(), sessionIDs, StatusAccepted)
	if err != nil {
		return 0, err
	}
	result, err := db.Exec(db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, _ := result.RowsAffected()
	return int(affected), nil
}
