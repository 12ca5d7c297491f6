package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type BookSessionRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ScheduledTime   time.Time `json:"scheduledTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

type SessionDTO struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	MentorID        string    `json:"mentorId"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	ScheduledTime   time.Time `json:"scheduledTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func sessionDTO(session models.Session) SessionDTO {
	return SessionDTO{
		ID:              session.ID,
		StudentID:       session.StudentID,
		MentorID:        session.MentorID,
		Title:           session.Title,
		Description:     session.Description,
		Status:          session.Status,
		ScheduledTime:   session.ScheduledTime,
		DurationMinutes: session.DurationMinutes,
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
}

func (s *Server) BookSession(w http.ResponseWriter, r *http.Request) {
	mentorID := chi.URLParam(r, "mentorId")
	var req BookSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Title == "" {
		WriteError(w, http.StatusBadRequest, "Title is required")
		return
	}
	session, err := services.BookSession(s.DB, CurrentUserID(r), mentorID, req.Title, req.Description, req.ScheduledTime, req.DurationMinutes)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]SessionDTO{"session": sessionDTO(session)})
}

func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := services.ListUserSessions(s.DB, CurrentUserID(r), r.URL.Query().Get("status"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, sessionDTO(session))
	}
	WriteJSON(w, http.StatusOK, map[string][]SessionDTO{"items": items})
}

func (s *Server) SessionDetail(w http.ResponseWriter, r *http.Request) {
	session, err := services.GetSession(s.DB, chi.URLParam(r, "sessionId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	userID := CurrentUserID(r)
	// Non-parties get the same answer as a missing id.
	if userID != session.StudentID && userID != session.MentorID && !CurrentFlags(r).IsAdmin {
		WriteServiceError(w, services.ErrNotFound(services.CodeNotFound, "Session not found."))
		return
	}
	WriteJSON(w, http.StatusOK, map[string]SessionDTO{"session": sessionDTO(session)})
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request, action string) {
	session, err := services.TransitionSession(s.DB, chi.URLParam(r, "sessionId"), CurrentUserID(r), CurrentFlags(r).IsAdmin, action)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]SessionDTO{"session": sessionDTO(session)})
}

func (s *Server) AcceptSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, services.ActionAccept)
}

func (s *Server) RejectSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, services.ActionReject)
}

func (s *Server) CancelSession(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, services.ActionCancel)
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteSession(s.DB, chi.URLParam(r, "sessionId"), CurrentUserID(r)); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
