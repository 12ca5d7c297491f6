package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

// CreateResume records an uploaded resume. When the new resume is primary,
// every other primary for the same student is cleared in the same
// transaction; last write wins.
func CreateResume(db *sqlx.DB, studentID, title, assetID string, isPrimary bool) (models.Resume, error) {
	tx, err := db.Beginx()
	if err != nil {
		return models.Resume{}, err
	}
	defer tx.Rollback()

	if isPrimary {
		if _, err := tx.Exec(`UPDATE resumes SET is_primary = FALSE WHERE student_id = $1 AND is_primary = TRUE`, studentID); err != nil {
			return models.Resume{}, err
		}
	}
	resume := models.Resume{
		ID:         uuid.NewString(),
		StudentID:  studentID,
		Title:      title,
		AssetID:    assetID,
		IsPrimary:  isPrimary,
		UploadedAt: time.Now().UTC(),
	}
	_, err = tx.Exec(`
INSERT INTO resumes (id, student_id, title, asset_id, is_primary, uploaded_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, resume.ID, resume.StudentID, resume.Title, resume.AssetID, resume.IsPrimary, resume.UploadedAt)
	if err != nil {
		return models.Resume{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Resume{}, err
	}
	return resume, nil
}

// SetPrimaryResume flags one resume as primary and clears the rest, so a
// student holds exactly one primary, or zero.
func SetPrimaryResume(db *sqlx.DB, studentID, resumeID string) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM resumes WHERE id = $1 AND student_id = $2)`, resumeID, studentID); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound(CodeNotFound, "Resume not found.")
	}
	if _, err := tx.Exec(`UPDATE resumes SET is_primary = FALSE WHERE student_id = $1 AND is_primary = TRUE`, studentID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE resumes SET is_primary = TRUE WHERE id = $1`, resumeID); err != nil {
		return err
	}
	return tx.Commit()
}

func ListResumes(db *sqlx.DB, studentID string) ([]models.Resume, error) {
	resumes := []models.Resume{}
	err := db.Select(&resumes, `
SELECT id, student_id, title, asset_id, is_primary, uploaded_at
FROM resumes
WHERE student_id = $1
ORDER BY is_primary DESC, uploaded_at DESC
`, studentID)
	return resumes, err
}

func GetResume(db *sqlx.DB, studentID, resumeID string) (models.Resume, error) {
	var resume models.Resume
	err := db.Get(&resume, `
SELECT id, student_id, title, asset_id, is_primary, uploaded_at
FROM resumes
WHERE id = $1 AND student_id = $2
`, resumeID, studentID)
	if err != nil {
		return models.Resume{}, ErrNotFound(CodeNotFound, "Resume not found.")
	}
	return resume, nil
}

func DeleteResume(db *sqlx.DB, basePath, studentID, resumeID string) error {
	resume, err := GetResume(db, studentID, resumeID)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM resumes WHERE id = $1`, resumeID); err != nil {
		return err
	}
	return DeleteAsset(db, basePath, resume.AssetID)
}
