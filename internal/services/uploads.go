package services

import (
	"path/filepath"
	"strings"
)

const (
	MaxUploadBytes    = 5 << 20
	MaxProjectImages  = 5
	MaxAvatarBytes    = 5 << 20
	resumeContentType = "application/pdf"
	resumeExtension   = ".pdf"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ValidateResumeUpload enforces the resume file contract: PDF only, at most
// 5MB. Checked before anything is handed to storage.
func ValidateResumeUpload(filename, contentType string, size int64) error {
	if size <= 0 {
		return ErrBadRequest(CodeBadRequest, "The uploaded file is empty.")
	}
	if size > MaxUploadBytes {
		return ErrBadRequest(CodeFileTooLarge, "File size must be no more than 5MB.")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != resumeExtension {
		return ErrBadRequest(CodeUnsupportedFileType, "Only PDF files are allowed.")
	}
	if contentType != "" && contentType != resumeContentType && contentType != "application/octet-stream" {
		return ErrBadRequest(CodeUnsupportedFileType, "Only PDF files are allowed.")
	}
	return nil
}

// ValidateProjectImage enforces the per-file image contract: jpg, jpeg, png
// or gif, at most 5MB each.
func ValidateProjectImage(filename string, size int64) error {
	if size <= 0 {
		return ErrBadRequest(CodeBadRequest, "The uploaded file is empty.")
	}
	if size > MaxUploadBytes {
		return ErrBadRequest(CodeFileTooLarge, "Image "+filename+" is too large. Maximum size is 5MB.")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return ErrBadRequest(CodeUnsupportedFileType, "Only JPG, JPEG, PNG, and GIF images are allowed.")
	}
	return nil
}

// ValidateProjectImageBatch caps an upload batch at 5 files and checks each.
func ValidateProjectImageBatch(files []UploadMeta) error {
	if len(files) > MaxProjectImages {
		return ErrBadRequest(CodeTooManyFiles, "You can upload a maximum of 5 images.")
	}
	for _, file := range files {
		if err := ValidateProjectImage(file.Filename, file.Size); err != nil {
			return err
		}
	}
	return nil
}

type UploadMeta struct {
	Filename string
	Size     int64
}

func ValidateAvatarUpload(filename string, size int64) error {
	if size <= 0 {
		return ErrBadRequest(CodeBadRequest, "The uploaded file is empty.")
	}
	if size > MaxAvatarBytes {
		return ErrBadRequest(CodeFileTooLarge, "File size must be no more than 5MB.")
	}
	return nil
}
