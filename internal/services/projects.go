package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DHRUV222222/CareerLift/internal/models"
)

func CreateProject(db *sqlx.DB, studentID, title, description, techStack string) (models.Project, error) {
	if title == "" {
		return models.Project{}, ErrBadRequest(CodeBadRequest, "Title is required.")
	}
	now := time.Now().UTC()
	project := models.Project{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Title:       title,
		Description: description,
		TechStack:   techStack,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := db.Exec(`
INSERT INTO projects (id, student_id, title, description, tech_stack, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`, project.ID, project.StudentID, project.Title, project.Description, project.TechStack, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func ListProjects(db *sqlx.DB, studentID string) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.Select(&projects, `
SELECT id, student_id, title, description, tech_stack, created_at, updated_at
FROM projects
WHERE student_id = $1
ORDER BY created_at DESC
`, studentID)
	return projects, err
}

// GetProject is owner-scoped: another student's project reads as absent.
func GetProject(db *sqlx.DB, studentID, projectID string) (models.Project, error) {
	var project models.Project
	err := db.Get(&project, `
SELECT id, student_id, title, description, tech_stack, created_at, updated_at
FROM projects
WHERE id = $1 AND student_id = $2
`, projectID, studentID)
	if err != nil {
		return models.Project{}, ErrNotFound(CodeNotFound, "Project not found.")
	}
	return project, nil
}

func UpdateProject(db *sqlx.DB, studentID, projectID string, title, description, techStack *string) (models.Project, error) {
	result, err := db.Exec(`
UPDATE projects
SET title = COALESCE($3, title),
    description = COALESCE($4, description),
    tech_stack = COALESCE($5, tech_stack),
    updated_at = $6
WHERE id = $1 AND student_id = $2
`, projectID, studentID, title, description, techStack, time.Now().UTC())
	if err != nil {
		return models.Project{}, err
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Project{}, ErrNotFound(CodeNotFound, "Project not found.")
	}
	return GetProject(db, studentID, projectID)
}

// DeleteProject removes the project and the stored files behind its images.
func DeleteProject(db *sqlx.DB, basePath, studentID, projectID string) error {
	if _, err := GetProject(db, studentID, projectID); err != nil {
		return err
	}
	images, err := ListProjectImages(db, projectID)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM projects WHERE id = $1 AND student_id = $2`, projectID, studentID); err != nil {
		return err
	}
	for _, image := range images {
		_ = DeleteAsset(db, basePath, image.AssetID)
	}
	return nil
}

func ListProjectImages(db *sqlx.DB, projectID string) ([]models.ProjectImage, error) {
	images := []models.ProjectImage{}
	err := db.Select(&images, `
SELECT id, project_id, asset_id, uploaded_at
FROM project_images
WHERE project_id = $1
ORDER BY uploaded_at
`, projectID)
	return images, err
}

func CountProjectImages(db *sqlx.DB, projectID string) (int, error) {
	var count int
	err := db.Get(&count, `SELECT COUNT(*) FROM project_images WHERE project_id = $1`, projectID)
	return count, err
}

func AddProjectImage(db *sqlx.DB, projectID, assetID string) (models.ProjectImage, error) {
	image := models.ProjectImage{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		AssetID:    assetID,
		UploadedAt: time.Now().UTC(),
	}
	_, err := db.Exec(`
INSERT INTO project_images (id, project_id, asset_id, uploaded_at)
VALUES ($1,$2,$3,$4)
`, image.ID, image.ProjectID, image.AssetID, image.UploadedAt)
	if err != nil {
		return models.ProjectImage{}, err
	}
	return image, nil
}

func DeleteProjectImage(db *sqlx.DB, basePath, studentID, projectID, imageID string) error {
	var image models.ProjectImage
	err := db.Get(&image, `
SELECT i.id, i.project_id, i.asset_id, i.uploaded_at
FROM project_images i
JOIN projects p ON p.id = i.project_id
WHERE i.id = $1 AND i.project_id = $2 AND p.student_id = $3
`, imageID, projectID, studentID)
	if err != nil {
		return ErrNotFound(CodeNotFound, "Project image not found.")
	}
	if _, err := db.Exec(`DELETE FROM project_images WHERE id = $1`, imageID); err != nil {
		return err
	}
	return DeleteAsset(db, basePath, image.AssetID)
}
