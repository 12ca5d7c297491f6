package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/config"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
	}
}

func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.Post("/auth/logout", s.Logout)

		api.Route("/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/", s.Me)
			me.Put("/profile", s.UpdateProfile)
			me.Put("/password", s.ChangePassword)
			me.Post("/avatar", s.UploadAvatar)
			me.Delete("/", s.DeleteAccount)
			me.Post("/ping", s.Ping)

			me.Post("/mentor", s.EnableMentorRole)
			me.Delete("/mentor", s.DisableMentorRole)
			me.With(RequireMentor).Put("/mentor-profile", s.UpdateMentorProfile)

			me.Route("/availability", func(avail chi.Router) {
				avail.Use(RequireMentor)
				avail.Get("/", s.ListAvailability)
				avail.Put("/", s.ReplaceAvailability)
				avail.Post("/slots", s.CreateSlot)
				avail.Put("/slots/{slotId}", s.UpdateSlot)
				avail.Delete("/slots/{slotId}", s.DeleteSlot)
			})
		})

		api.Route("/mentors", func(mentors chi.Router) {
			mentors.Use(WithAuth(s.Tokens))
			mentors.Get("/", s.ListMentors)
			mentors.Get("/{mentorId}", s.MentorDetail)
			mentors.With(RequireStudent).Post("/{mentorId}/book", s.BookSession)
		})

		api.Route("/sessions", func(sessions chi.Router) {
			sessions.Use(WithAuth(s.Tokens))
			sessions.Get("/", s.ListSessions)
			sessions.Get("/{sessionId}", s.SessionDetail)
			sessions.Post("/{sessionId}/accept", s.AcceptSession)
			sessions.Post("/{sessionId}/reject", s.RejectSession)
			sessions.Post("/{sessionId}/cancel", s.CancelSession)
			sessions.With(RequireMentor).Delete("/{sessionId}", s.DeleteSession)
		})

		api.Route("/resumes", func(resumes chi.Router) {
			resumes.Use(WithAuth(s.Tokens))
			resumes.Use(RequireStudent)
			resumes.Get("/", s.ListResumes)
			resumes.Post("/", s.UploadResume)
			resumes.Post("/{resumeId}/primary", s.SetPrimaryResume)
			resumes.Get("/{resumeId}/download", s.DownloadResume)
			resumes.Delete("/{resumeId}", s.DeleteResume)
		})

		api.Route("/projects", func(projects chi.Router) {
			projects.Use(WithAuth(s.Tokens))
			projects.Use(RequireStudent)
			projects.Get("/", s.ListProjects)
			projects.Post("/", s.CreateProject)
			projects.Get("/{projectId}", s.ProjectDetail)
			projects.Put("/{projectId}", s.UpdateProject)
			projects.Delete("/{projectId}", s.DeleteProject)
			projects.Post("/{projectId}/images", s.UploadProjectImages)
			projects.Delete("/{projectId}/images/{imageId}", s.DeleteProjectImage)
		})

		api.Route("/feedback", func(feedback chi.Router) {
			feedback.Use(WithAuth(s.Tokens))
			feedback.With(RequireMentor).Post("/", s.CreateFeedback)
			feedback.Get("/received", s.ListReceivedFeedback)
			feedback.With(RequireMentor).Get("/given", s.ListGivenFeedback)
		})

		api.Route("/dashboard", func(dash chi.Router) {
			dash.Use(WithAuth(s.Tokens))
			dash.With(RequireStudent).Get("/student", s.StudentDashboard)
			dash.With(RequireMentor).Get("/mentor", s.MentorDashboard)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireAdmin)
			admin.Post("/sessions/complete", s.CompleteSessions)
			admin.Get("/metrics/history", s.MetricsHistory)
		})

		api.Route("/media", func(media chi.Router) {
			media.Use(WithAuth(s.Tokens))
			media.Get("/assets/{assetId}/content", s.MediaContent)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
