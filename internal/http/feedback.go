package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type CreateFeedbackRequest struct {
	StudentID string `json:"studentId"`
	Content   string `json:"content"`
}

type FeedbackDTO struct {
	ID        string    `json:"id"`
	MentorID  string    `json:"mentorId"`
	StudentID string    `json:"studentId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func feedbackDTOs(items []models.Feedback) []FeedbackDTO {
	dtos := make([]FeedbackDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, FeedbackDTO{
			ID:        item.ID,
			MentorID:  item.MentorID,
			StudentID: item.StudentID,
			Content:   item.Content,
			CreatedAt: item.CreatedAt,
		})
	}
	return dtos
}

func (s *Server) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	feedback, err := services.CreateFeedback(s.DB, CurrentUserID(r), req.StudentID, req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]FeedbackDTO{"feedback": {
		ID:        feedback.ID,
		MentorID:  feedback.MentorID,
		StudentID: feedback.StudentID,
		Content:   feedback.Content,
		CreatedAt: feedback.CreatedAt,
	}})
}

func (s *Server) ListReceivedFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListReceivedFeedback(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]FeedbackDTO{"items": feedbackDTOs(items)})
}

func (s *Server) ListGivenFeedback(w http.ResponseWriter, r *http.Request) {
	items, err := services.ListGivenFeedback(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]FeedbackDTO{"items": feedbackDTOs(items)})
}
