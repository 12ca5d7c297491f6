package httpapi

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

type UserDTO struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	IsStudent   bool       `json:"isStudent"`
	IsMentor    bool       `json:"isMentor"`
	FirstName   *string    `json:"firstName,omitempty"`
	LastName    *string    `json:"lastName,omitempty"`
	Bio         *string    `json:"bio,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func buildUserDTO(db *sqlx.DB, userID string) (*UserDTO, error) {
	row := struct {
		ID        string     `db:"id"`
		Username  string     `db:"username"`
		Email     string     `db:"email"`
		IsStudent bool       `db:"is_student"`
		IsMentor  bool       `db:"is_mentor"`
		FirstName *string    `db:"first_name"`
		LastName  *string    `db:"last_name"`
		Bio       *string    `db:"bio"`
		Phone     *string    `db:"phone"`
		AvatarID  *string    `db:"avatar_asset_id"`
		LastLogin *time.Time `db:"last_login_at"`
	}{}
	if err := db.Get(&row, `
SELECT id, username, email, is_student, is_mentor, first_name, last_name, bio, phone, avatar_asset_id, last_login_at
FROM users
WHERE id = $1
`, userID); err != nil {
		return nil, err
	}
	var avatarURL *string
	if row.AvatarID != nil {
		url := services.BuildAssetURL(*row.AvatarID)
		avatarURL = &url
	}
	return &UserDTO{
		ID:          row.ID,
		Username:    row.Username,
		Email:       row.Email,
		IsStudent:   row.IsStudent,
		IsMentor:    row.IsMentor,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Bio:         row.Bio,
		Phone:       row.Phone,
		AvatarURL:   avatarURL,
		LastLoginAt: row.LastLogin,
	}, nil
}
