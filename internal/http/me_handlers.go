package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

type ProfileUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	userDTO, err := buildUserDTO(s.DB, userID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]*UserDTO{"user": userDTO})
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	var req ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	_, err := s.DB.Exec(`
UPDATE users
SET first_name = COALESCE($2, first_name),
    last_name = COALESCE($3, last_name),
    bio = COALESCE($4, bio),
    phone = COALESCE($5, phone),
    updated_at = $6
WHERE id = $1
`, userID, req.FirstName, req.LastName, req.Bio, req.Phone, time.Now().UTC())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	userDTO, err := buildUserDTO(s.DB, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]*UserDTO{"user": userDTO})
}

func (s *Server) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		WriteError(w, http.StatusBadRequest, "Password confirmation does not match")
		return
	}
	row := struct {
		PasswordHash string `db:"password_hash"`
	}{}
	if err := s.DB.Get(&row, `SELECT password_hash FROM users WHERE id = $1`, userID); err != nil {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if !s.Tokens.VerifyPassword(req.CurrentPassword, row.PasswordHash) {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	hash, err := s.Tokens.HashPassword(req.NewPassword)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if _, err := s.DB.Exec(`UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`, hash, time.Now().UTC(), userID); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "The uploaded file is empty.")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "The uploaded file is empty.")
		return
	}
	defer file.Close()
	if err := services.ValidateAvatarUpload(header.Filename, header.Size); err != nil {
		WriteServiceError(w, err)
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	assetID, url, err := services.SaveMediaAsset(s.DB, s.Config.MediaStoragePath, services.BucketAvatars, contentType, header.Filename, userID, file)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	var previous *string
	_ = s.DB.Get(&previous, `SELECT avatar_asset_id FROM users WHERE id = $1`, userID)
	_, err = s.DB.Exec(`UPDATE users SET avatar_asset_id = $1, updated_at = $2 WHERE id = $3`, assetID, time.Now().UTC(), userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if previous != nil && strings.TrimSpace(*previous) != "" {
		_ = services.DeleteAsset(s.DB, s.Config.MediaStoragePath, *previous)
	}
	WriteJSON(w, http.StatusOK, map[string]string{"assetId": assetID, "avatarUrl": url})
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	var avatarID *string
	_ = s.DB.Get(&avatarID, `SELECT avatar_asset_id FROM users WHERE id = $1`, userID)
	if avatarID != nil && strings.TrimSpace(*avatarID) != "" {
		_ = services.DeleteAsset(s.DB, s.Config.MediaStoragePath, *avatarID)
	}
	_, _ = s.DB.Exec(`DELETE FROM users WHERE id = $1`, userID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	_ = services.TouchLastSeen(s.DB, userID)
	w.WriteHeader(http.StatusNoContent)
}
