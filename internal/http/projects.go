package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type ProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TechStack   *string `json:"techStack"`
}

type ProjectImageDTO struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type ProjectDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	TechStack   string            `json:"techStack"`
	Images      []ProjectImageDTO `json:"images"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (s *Server) projectDTO(project models.Project) (ProjectDTO, error) {
	images, err := services.ListProjectImages(s.DB, project.ID)
	if err != nil {
		return ProjectDTO{}, err
	}
	imageDTOs := make([]ProjectImageDTO, 0, len(images))
	for _, image := range images {
		imageDTOs = append(imageDTOs, ProjectImageDTO{
			ID:         image.ID,
			URL:        services.BuildAssetURL(image.AssetID),
			UploadedAt: image.UploadedAt,
		})
	}
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		TechStack:   project.TechStack,
		Images:      imageDTOs,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}

func (s *Server) writeProject(w http.ResponseWriter, status int, project models.Project) {
	dto, err := s.projectDTO(project)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, status, map[string]ProjectDTO{"project": dto})
}

func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := services.ListProjects(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]ProjectDTO, 0, len(projects))
	for _, project := range projects {
		dto, err := s.projectDTO(project)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		items = append(items, dto)
	}
	WriteJSON(w, http.StatusOK, map[string][]ProjectDTO{"items": items})
}

func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	title, description, techStack := "", "", ""
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.TechStack != nil {
		techStack = *req.TechStack
	}
	project, err := services.CreateProject(s.DB, CurrentUserID(r), title, description, techStack)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.writeProject(w, http.StatusCreated, project)
}

func (s *Server) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	project, err := services.GetProject(s.DB, CurrentUserID(r), chi.URLParam(r, "projectId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.writeProject(w, http.StatusOK, project)
}

func (s *Server) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	project, err := services.UpdateProject(s.DB, CurrentUserID(r), chi.URLParam(r, "projectId"), req.Title, req.Description, req.TechStack)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	s.writeProject(w, http.StatusOK, project)
}

func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteProject(s.DB, s.Config.MediaStoragePath, CurrentUserID(r), chi.URLParam(r, "projectId")); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UploadProjectImages(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	projectID := chi.URLParam(r, "projectId")
	project, err := services.GetProject(s.DB, userID, projectID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	form := r.MultipartForm
	headers := form.File["images"]
	if len(headers) == 0 {
		WriteError(w, http.StatusBadRequest, "No images provided")
		return
	}
	metas := make([]services.UploadMeta, 0, len(headers))
	for _, header := range headers {
		metas = append(metas, services.UploadMeta{Filename: header.Filename, Size: header.Size})
	}
	if err := services.ValidateProjectImageBatch(metas); err != nil {
		WriteServiceError(w, err)
		return
	}
	existing, err := services.CountProjectImages(s.DB, projectID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing+len(headers) > services.MaxProjectImages {
		WriteServiceError(w, services.ErrBadRequest(services.CodeTooManyFiles, "A project can hold at most 5 images."))
		return
	}
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Unreadable file")
			return
		}
		assetID, _, err := services.SaveMediaAsset(s.DB, s.Config.MediaStoragePath, services.BucketProject, header.Header.Get("Content-Type"), header.Filename, userID, file)
		file.Close()
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		if _, err := services.AddProjectImage(s.DB, projectID, assetID); err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	s.writeProject(w, http.StatusCreated, project)
}

func (s *Server) DeleteProjectImage(w http.ResponseWriter, r *http.Request) {
	err := services.DeleteProjectImage(s.DB, s.Config.MediaStoragePath, CurrentUserID(r), chi.URLParam(r, "projectId"), chi.URLParam(r, "imageId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
