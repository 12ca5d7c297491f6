package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/services"
)

type MentorCardDTO struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
	Title       *string `json:"title,omitempty"`
	Company     *string `json:"company,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	LinkedinURL *string `json:"linkedinUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

type MentorDetailDTO struct {
	MentorCardDTO
	Slots []SlotDTO `json:"slots"`
}

type MentorProfileUpdateRequest struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Bio         *string `json:"bio"`
	LinkedinURL *string `json:"linkedinUrl"`
	IsAvailable *bool   `json:"isAvailable"`
}

func mentorCardDTO(m services.MentorListing) MentorCardDTO {
	var avatarURL *string
	if m.AvatarAsset != nil {
		url := services.BuildAssetURL(*m.AvatarAsset)
		avatarURL = &url
	}
	return MentorCardDTO{
		ID:          m.UserID,
		Username:    m.Username,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		AvatarURL:   avatarURL,
		Title:       m.Title,
		Company:     m.Company,
		Bio:         m.Bio,
		LinkedinURL: m.LinkedinURL,
		IsAvailable: m.IsAvailable,
	}
}

func (s *Server) ListMentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := services.ListMentors(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]MentorCardDTO, 0, len(mentors))
	for _, mentor := range mentors {
		items = append(items, mentorCardDTO(mentor))
	}
	WriteJSON(w, http.StatusOK, map[string][]MentorCardDTO{"items": items})
}

func (s *Server) MentorDetail(w http.ResponseWriter, r *http.Request) {
	mentorID := chi.URLParam(r, "mentorId")
	mentor, err := services.GetMentorListing(s.DB, mentorID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	slots, err := services.ListSlots(s.DB, mentorID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	detail := MentorDetailDTO{MentorCardDTO: mentorCardDTO(mentor), Slots: slotDTOs(slots)}
	WriteJSON(w, http.StatusOK, map[string]MentorDetailDTO{"mentor": detail})
}

// EnableMentorRole grants the caller the mentor flag and creates the profile.
// Role flags live in access tokens, so the client should refresh after this.
func (s *Server) EnableMentorRole(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	if err := services.EnableMentor(s.DB, userID); err != nil {
		WriteServiceError(w, err)
		return
	}
	userDTO, err := buildUserDTO(s.DB, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]*UserDTO{"user": userDTO})
}

func (s *Server) DisableMentorRole(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	if err := services.DisableMentor(s.DB, userID); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UpdateMentorProfile(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	var req MentorProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := services.UpdateMentorProfile(s.DB, userID, req.Title, req.Company, req.Bio, req.LinkedinURL, req.IsAvailable); err != nil {
		WriteServiceError(w, err)
		return
	}
	profile, err := services.GetMentorProfile(s.DB, userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"title":       profile.Title,
		"company":     profile.Company,
		"bio":         profile.Bio,
		"linkedinUrl": profile.LinkedinURL,
		"isAvailable": profile.IsAvailable,
	})
}
