package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

// CreateFeedback lets a mentor leave a note on a student they have actually
// worked with: the pair must share at least one completed session.
func CreateFeedback(db *sqlx.DB, mentorID, studentID, content string) (models.Feedback, error) {
	if content == "" {
		return models.Feedback{}, ErrBadRequest(CodeBadRequest, "Content is required.")
	}
	var shared int
	err := db.Get(&shared, `
SELECT COUNT(*) FROM sessions
WHERE mentor_id = $1 AND student_id = $2 AND status = $3
`, mentorID, studentID, StatusCompleted)
	if err != nil {
		return models.Feedback{}, err
	}
	if shared == 0 {
		return models.Feedback{}, ErrForbidden(CodeNotAuthorized, "No completed session with this student.")
	}
	now := time.Now().UTC()
	feedback := models.Feedback{
		ID:        uuid.NewString(),
		MentorID:  mentorID,
		StudentID: studentID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = db.Exec(`
INSERT INTO feedback (id, mentor_id, student_id, content, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, feedback.ID, feedback.MentorID, feedback.StudentID, feedback.Content, feedback.CreatedAt, feedback.UpdatedAt)
	if err != nil {
		return models.Feedback{}, err
	}
	return feedback, nil
}

// ListReceivedFeedback returns notes addressed to a student.
func ListReceivedFeedback(db *sqlx.DB, studentID string) ([]models.Feedback, error) {
	items := []models.Feedback{}
	err := db.Select(&items, `
SELECT id, mentor_id, student_id, content, created_at, updated_at
FROM feedback
WHERE student_id = $1
ORDER BY created_at DESC
`, studentID)
	return items, err
}

// ListGivenFeedback returns notes a mentor has authored.
func ListGivenFeedback(db *sqlx.DB, mentorID string) ([]models.Feedback, error) {
	items := []models.Feedback{}
	err := db.Select(&items, `
SELECT id, mentor_id, student_id, content, created_at, updated_at
FROM feedback
WHERE mentor_id = $1
ORDER BY created_at DESC
`, mentorID)
	return items, err
}
