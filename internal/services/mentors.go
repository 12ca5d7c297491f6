package services

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

// EnableMentor flips the mentor flag and creates the profile in one
// transaction. The profile exists exactly while the flag is set.
func EnableMentor(db *sqlx.DB, userID string) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := tx.Exec(`UPDATE users SET is_mentor = TRUE, updated_at = $2 WHERE id = $1`, userID, now)
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound(CodeNotFound, "User not found.")
	}
	_, err = tx.Exec(`
INSERT INTO mentor_profiles (user_id, is_available, created_at, updated_at)
VALUES ($1, TRUE, $2, $2)
ON CONFLICT (user_id) DO NOTHING
`, userID, now)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DisableMentor clears the flag and removes the profile; slots go with it via
// cascade. The profile cannot outlive the flag.
func DisableMentor(db *sqlx.DB, userID string) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE users SET is_mentor = FALSE, updated_at = $2 WHERE id = $1`, userID, time.Now().UTC()); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM mentor_profiles WHERE user_id = $1`, userID); err != nil {
		return err
	}
	return tx.Commit()
}

func GetMentorProfile(db *sqlx.DB, userID string) (models.MentorProfile, error) {
	var profile models.MentorProfile
	err := db.Get(&profile, `
SELECT user_id, title, company, bio, linkedin_url, is_available, created_at, updated_at
FROM mentor_profiles
WHERE user_id = $1
`, userID)
	if err != nil {
		return models.MentorProfile{}, ErrNotFound(CodeMentorNotFound, "Mentor profile not found.")
	}
	return profile, nil
}

func UpdateMentorProfile(db *sqlx.DB, userID string, title, company, bio, linkedinURL *string, isAvailable *bool) error {
	result, err := db.Exec(`
UPDATE mentor_profiles
SET title = COALESCE($2, title),
    company = COALESCE($3, company),
    bio = COALESCE($4, bio),
    linkedin_url = COALESCE($5, linkedin_url),
    is_available = COALESCE($6, is_available),
    updated_at = $7
WHERE user_id = $1
`, userID, title, company, bio, linkedinURL, isAvailable, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound(CodeMentorNotFound, "Mentor profile not found.")
	}
	return nil
}

// MentorListing is the public card: user fields joined with the profile.
type MentorListing struct {
	UserID      string  `db:"user_id"`
	Username    string  `db:"username"`
	FirstName   *string `db:"first_name"`
	LastName    *string `db:"last_name"`
	AvatarAsset *string `db:"avatar_asset_id"`
	Title       *string `db:"title"`
	Company     *string `db:"company"`
	Bio         *string `db:"bio"`
	LinkedinURL *string `db:"linkedin_url"`
	IsAvailable bool    `db:"is_available"`
}

// ListMentors is the only cross-owner query in the system: every user with
// the mentor flag set and a profile row.
func ListMentors(db *sqlx.DB) ([]MentorListing, error) {
	mentors := []MentorListing{}
	err := db.Select(&mentors, `
SELECT u.id AS user_id, u.username, u.first_name, u.last_name, u.avatar_asset_id,
       p.title, p.company, p.bio, p.linkedin_url, p.is_available
FROM users u
JOIN mentor_profiles p ON p.user_id = u.id
WHERE u.is_mentor = TRUE
ORDER BY u.username
`)
	return mentors, err
}

func GetMentorListing(db *sqlx.DB, mentorID string) (MentorListing, error) {
	var mentor MentorListing
	err := db.Get(&mentor, `
SELECT u.id AS user_id, u.username, u.first_name, u.last_name, u.avatar_asset_id,
       p.title, p.company, p.bio, p.linkedin_url, p.is_available
FROM users u
JOIN mentor_profiles p ON p.user_id = u.id
WHERE u.id = $1 AND u.is_mentor = TRUE
`, mentorID)
	if err != nil {
		return MentorListing{}, ErrNotFound(CodeMentorNotFound, "Mentor not found.")
	}
	return mentor, nil
}
