package services

import (
	"time"

	"github.com/jmoiron/sqlx"
)

// FetchActorFlags reads the role flags for a user. The flags are the source
// of truth; tokens only cache them.
func FetchActorFlags(db *sqlx.DB, userID string) (ActorFlags, error) {
	row := struct {
		IsStudent bool `db:"is_student"`
		IsMentor  bool `db:"is_mentor"`
		IsAdmin   bool `db:"is_admin"`
	}{}
	err := db.Get(&row, `SELECT is_student, is_mentor, is_admin FROM users WHERE id = $1`, userID)
	if err != nil {
		return ActorFlags{}, err
	}
	return ActorFlags{IsStudent: row.IsStudent, IsMentor: row.IsMentor, IsAdmin: row.IsAdmin}, nil
}

func IsMentor(db *sqlx.DB, userID string) (bool, error) {
	var isMentor bool
	err := db.Get(&isMentor, `
SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND is_mentor = TRUE)
`, userID)
	return isMentor, err
}

func TouchLastSeen(db *sqlx.DB, userID string) error {
	_, err := db.Exec(`UPDATE users SET last_seen_at = $1 WHERE id = $2`, time.Now().UTC(), userID)
	return err
}

func SetLastLogin(db *sqlx.DB, userID string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE users SET last_login_at = $1, last_seen_at = $1 WHERE id = $2`, now, userID)
	return err
}
