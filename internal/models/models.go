package models

import "time"

type User struct {
	ID           string     `db:"id"`
	Username     string     `db:"username"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	IsStudent    bool       `db:"is_student"`
	IsMentor     bool       `db:"is_mentor"`
	IsAdmin      bool       `db:"is_admin"`
	FirstName    *string    `db:"first_name"`
	LastName     *string    `db:"last_name"`
	Bio          *string    `db:"bio"`
	Phone        *string    `db:"phone"`
	AvatarAsset  *string    `db:"avatar_asset_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	LastSeenAt   *time.Time `db:"last_seen_at"`
}

type MentorProfile struct {
	UserID      string    `db:"user_id"`
	Title       *string   `db:"title"`
	Company     *string   `db:"company"`
	Bio         *string   `db:"bio"`
	LinkedinURL *string   `db:"linkedin_url"`
	IsAvailable bool      `db:"is_available"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// AvailabilitySlot is a weekly window during which a mentor declares general
// availability. Day 0 is Monday; start and end are minutes from midnight,
// naive local-to-mentor.
type AvailabilitySlot struct {
	ID          string    `db:"id"`
	MentorID    string    `db:"mentor_id"`
	DayOfWeek   int       `db:"day_of_week"`
	StartMinute int       `db:"start_minute"`
	EndMinute   int       `db:"end_minute"`
	IsRecurring bool      `db:"is_recurring"`
	CreatedAt   time.Time `db:"created_at"`
}

type Session struct {
	ID              string    `db:"id"`
	StudentID       string    `db:"student_id"`
	MentorID        string    `db:"mentor_id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	Status          string    `db:"status"`
	ScheduledTime   time.Time `db:"scheduled_time"`
	DurationMinutes int       `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type MediaAsset struct {
	ID          string    `db:"id"`
	OwnerUserID *string   `db:"owner_user_id"`
	Bucket      string    `db:"bucket"`
	StorageKey  string    `db:"storage_key"`
	Filename    *string   `db:"filename"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	Sha256      *string   `db:"sha256"`
	CreatedAt   time.Time `db:"created_at"`
}

type Resume struct {
	ID         string    `db:"id"`
	StudentID  string    `db:"student_id"`
	Title      string    `db:"title"`
	AssetID    string    `db:"asset_id"`
	IsPrimary  bool      `db:"is_primary"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type Project struct {
	ID          string    `db:"id"`
	StudentID   string    `db:"student_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	TechStack   string    `db:"tech_stack"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type ProjectImage struct {
	ID         string    `db:"id"`
	ProjectID  string    `db:"project_id"`
	AssetID    string    `db:"asset_id"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type Feedback struct {
	ID        string    `db:"id"`
	MentorID  string    `db:"mentor_id"`
	StudentID string    `db:"student_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type PlatformMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	HeapUsedBytes     int64     `db:"heap_used_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
	PendingRequests   int       `db:"pending_requests"`
	AcceptedUpcoming  int       `db:"accepted_upcoming"`
	CompletedTotal    int       `db:"completed_total"`
}
