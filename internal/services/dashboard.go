package services

import (
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

const dashboardListCap = 5

// StudentDashboard is the read-only projection backing the student's home
// screen. Upcoming lists are ascending by scheduled time and capped at 5.
type StudentDashboard struct {
	Resumes          []models.Resume
	Projects         []models.Project
	UpcomingSessions []models.Session
	AcceptedSessions []models.Session
	Mentors          []MentorListing
	ProjectCount     int
	SessionCount     int
	ResumeCount      int
	MentorCount      int
}

type MentorDashboard struct {
	PendingRequests   int
	UpcomingSessions  []models.Session
	RecentSessions    []models.Session
	DistinctStudents  int
	CompletedSessions int
}

// BuildStudentDashboard runs the independent projection queries concurrently.
// "Upcoming" and "past" are computed against wall-clock time at query time.
func BuildStudentDashboard(db *sqlx.DB, studentID string) (StudentDashboard, error) {
	now := time.Now().UTC()
	var dash StudentDashboard
	var group errgroup.Group

	group.Go(func() error {
		dash.Resumes = []models.Resume{}
		return db.Select(&dash.Resumes, `
SELECT id, student_id, title, asset_id, is_primary, uploaded_at
FROM resumes
WHERE student_id = $1
ORDER BY is_primary DESC, uploaded_at DESC
`, studentID)
	})
	group.Go(func() error {
		dash.Projects = []models.Project{}
		return db.Select(&dash.Projects, `
SELECT id, student_id, title, description, tech_stack, created_at, updated_at
FROM projects
WHERE student_id = $1
ORDER BY created_at DESC
`, studentID)
	})
	group.Go(func() error {
		dash.UpcomingSessions = []models.Session{}
		return db.Select(&dash.UpcomingSessions, `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE student_id = $1 AND status IN ('accepted','requested') AND scheduled_time >= $2
ORDER BY scheduled_time
LIMIT $3
`, studentID, now, dashboardListCap)
	})
	group.Go(func() error {
		dash.AcceptedSessions = []models.Session{}
		return db.Select(&dash.AcceptedSessions, `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE student_id = $1 AND status = 'accepted' AND scheduled_time >= $2
ORDER BY scheduled_time
LIMIT $3
`, studentID, now, dashboardListCap)
	})
	group.Go(func() error {
		dash.Mentors = []MentorListing{}
		return db.Select(&dash.Mentors, `
SELECT u.id AS user_id, u.username, u.first_name, u.last_name, u.avatar_asset_id,
       p.title, p.company, p.bio, p.linkedin_url, p.is_available
FROM users u
JOIN mentor_profiles p ON p.user_id = u.id
WHERE u.is_mentor = TRUE AND u.id IN (
  SELECT DISTINCT mentor_id FROM sessions WHERE student_id = $1
)
ORDER BY u.username
`, studentID)
	})
	group.Go(func() error {
		return db.Get(&dash.SessionCount, `SELECT COUNT(*) FROM sessions WHERE student_id = $1`, studentID)
	})

	if err := group.Wait(); err != nil {
		return StudentDashboard{}, err
	}
	dash.ProjectCount = len(dash.Projects)
	dash.ResumeCount = len(dash.Resumes)
	dash.MentorCount = len(dash.Mentors)
	return dash, nil
}

func BuildMentorDashboard(db *sqlx.DB, mentorID string) (MentorDashboard, error) {
	now := time.Now().UTC()
	var dash MentorDashboard
	var group errgroup.Group

	group.Go(func() error {
		return db.Get(&dash.PendingRequests, `
SELECT COUNT(*) FROM sessions WHERE mentor_id = $1 AND status = 'requested'
`, mentorID)
	})
	group.Go(func() error {
		dash.UpcomingSessions = []models.Session{}
		return db.Select(&dash.UpcomingSessions, `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE mentor_id = $1 AND status = 'accepted' AND scheduled_time > $2
ORDER BY scheduled_time
LIMIT $3
`, mentorID, now, dashboardListCap)
	})
	group.Go(func() error {
		dash.RecentSessions = []models.Session{}
		return db.Select(&dash.RecentSessions, `
SELECT id, student_id, mentor_id, title, description, status, scheduled_time, duration_minutes, created_at, updated_at
FROM sessions
WHERE mentor_id = $1
ORDER BY updated_at DESC
LIMIT $2
`, mentorID, dashboardListCap)
	})
	group.Go(func() error {
		return db.Get(&dash.DistinctStudents, `
SELECT COUNT(DISTINCT student_id) FROM sessions WHERE mentor_id = $1
`, mentorID)
	})
	group.Go(func() error {
		return db.Get(&dash.CompletedSessions, `
SELECT COUNT(*) FROM sessions WHERE mentor_id = $1 AND status = 'completed'
`, mentorID)
	})

	if err := group.Wait(); err != nil {
		return MentorDashboard{}, err
	}
	return dash, nil
}
