package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/DHRUV222222/CareerLift/internal/models"
	"github.com/DHRUV222222/CareerLift/internal/services"
)

type ResumeDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsPrimary   bool      `json:"isPrimary"`
	DownloadURL string    `json:"downloadUrl"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

func resumeDTO(resume models.Resume) ResumeDTO {
	return ResumeDTO{
		ID:          resume.ID,
		Title:       resume.Title,
		IsPrimary:   resume.IsPrimary,
		DownloadURL: services.BuildAssetURL(resume.AssetID),
		UploadedAt:  resume.UploadedAt,
	}
}

func (s *Server) ListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := services.ListResumes(s.DB, CurrentUserID(r))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]ResumeDTO, 0, len(resumes))
	for _, resume := range resumes {
		items = append(items, resumeDTO(resume))
	}
	WriteJSON(w, http.StatusOK, map[string][]ResumeDTO{"items": items})
}

func (s *Server) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Missing file")
		return
	}
	defer file.Close()

	if err := services.ValidateResumeUpload(header.Filename, header.Header.Get("Content-Type"), header.Size); err != nil {
		WriteServiceError(w, err)
		return
	}
	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}
	isPrimary := r.FormValue("isPrimary") == "true"

	userID := CurrentUserID(r)
	assetID, _, err := services.SaveMediaAsset(s.DB, s.Config.MediaStoragePath, services.BucketResumes, "application/pdf", header.Filename, userID, file)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	resume, err := services.CreateResume(s.DB, userID, title, assetID, isPrimary)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, map[string]ResumeDTO{"resume": resumeDTO(resume)})
}

func (s *Server) SetPrimaryResume(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	if err := services.SetPrimaryResume(s.DB, userID, chi.URLParam(r, "resumeId")); err != nil {
		WriteServiceError(w, err)
		return
	}
	resumes, err := services.ListResumes(s.DB, userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]ResumeDTO, 0, len(resumes))
	for _, resume := range resumes {
		items = append(items, resumeDTO(resume))
	}
	WriteJSON(w, http.StatusOK, map[string][]ResumeDTO{"items": items})
}

func (s *Server) DownloadResume(w http.ResponseWriter, r *http.Request) {
	resume, err := services.GetResume(s.DB, CurrentUserID(r), chi.URLParam(r, "resumeId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	path, contentType, filename, err := services.AssetPath(s.DB, s.Config.MediaStoragePath, resume.AssetID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	name := resume.Title + ".pdf"
	if filename != nil {
		name = *filename
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

func (s *Server) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteResume(s.DB, s.Config.MediaStoragePath, CurrentUserID(r), chi.URLParam(r, "resumeId")); err != nil {
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
