package httpapi

import (
	"net/http"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

func sessionDTOs(sessions []models.Session) []SessionDTO {
	items := make([]SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, sessionDTO(session))
	}
	return items
}

func (s *Server) StudentDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := services.BuildStudentDashboard(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resumes := make([]ResumeDTO, 0, len(dash.Resumes))
	for _, resume := range dash.Resumes {
		resumes = append(resumes, resumeDTO(resume))
	}
	projects := make([]ProjectDTO, 0, len(dash.Projects))
	for _, project := range dash.Projects {
		dto, err := s.projectDTO(project)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		projects = append(projects, dto)
	}
	mentors := make([]MentorCardDTO, 0, len(dash.Mentors))
	for _, mentor := range dash.Mentors {
		mentors = append(mentors, mentorCardDTO(mentor))
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"resumes":          resumes,
		"projects":         projects,
		"upcomingSessions": sessionDTOs(dash.UpcomingSessions),
		"acceptedSessions": sessionDTOs(dash.AcceptedSessions),
		"mentors":          mentors,
		"counts": map[string]int{
			"projects": dash.ProjectCount,
			"sessions": dash.SessionCount,
			"resumes":  dash.ResumeCount,
			"mentors":  dash.MentorCount,
		},
	})
}

func (s *Server) MentorDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := services.BuildMentorDashboard(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"pendingRequests":   dash.PendingRequests,
		"upcomingSessions":  sessionDTOs(dash.UpcomingSessions),
		"recentSessions":    sessionDTOs(dash.RecentSessions),
		"distinctStudents":  dash.DistinctStudents,
		"completedSessions": dash.CompletedSessions,
	})
}
