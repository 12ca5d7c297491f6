package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeUpload(t *testing.T) {
	assert.NoError(t, ValidateResumeUpload("cv.pdf", "application/pdf", 1024))
	assert.NoError(t, ValidateResumeUpload("CV.PDF", "", 1024))
	assert.NoError(t, ValidateResumeUpload("cv.pdf", "application/octet-stream", MaxUploadBytes))
}

func TestValidateResumeUploadRejectsNonPDF(t *testing.T) {
	err := ValidateResumeUpload("cv.docx", "", 1024)
	require.Error(t, err)
	assert.Equal(t, CodeUnsupportedFileType, ErrCode(err))

	err = ValidateResumeUpload("cv.pdf", "text/html", 1024)
	require.Error(t, err)
	assert.Equal(t, CodeUnsupportedFileType, ErrCode(err))
}

func TestValidateResumeUploadRejectsOversize(t *testing.T) {
	err := ValidateResumeUpload("cv.pdf", "application/pdf", MaxUploadBytes+1)
	require.Error(t, err)
	assert.Equal(t, CodeFileTooLarge, ErrCode(err))
}

func TestValidateResumeUploadRejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateResumeUpload("cv.pdf", "application/pdf", 0))
}

func TestValidateProjectImage(t *testing.T) {
	for _, name := range []string{"shot.jpg", "shot.jpeg", "shot.png", "shot.gif", "SHOT.PNG"} {
		assert.NoError(t, ValidateProjectImage(name, 1024), name)
	}

	err := ValidateProjectImage("shot.bmp", 1024)
	require.Error(t, err)
	assert.Equal(t, CodeUnsupportedFileType, ErrCode(err))

	err = ValidateProjectImage("shot.png", MaxUploadBytes+1)
	require.Error(t, err)
	assert.Equal(t, CodeFileTooLarge, ErrCode(err))
}

func TestValidateProjectImageBatch(t *testing.T) {
	batch := make([]UploadMeta, 0, MaxProjectImages)
	for i := 0; i < MaxProjectImages; i++ {
		batch = append(batch, UploadMeta{Filename: "shot.png", Size: 1024})
	}
	assert.NoError(t, ValidateProjectImageBatch(batch))

	batch = append(batch, UploadMeta{Filename: "shot.png", Size: 1024})
	err := ValidateProjectImageBatch(batch)
	require.Error(t, err)
	assert.Equal(t, CodeTooManyFiles, ErrCode(err))
}

func TestValidateProjectImageBatchRejectsBadMember(t *testing.T) {
	batch := []UploadMeta{
		{Filename: "shot.png", Size: 1024},
		{Filename: "notes.txt", Size: 1024},
	}
	err := ValidateProjectImageBatch(batch)
	require.Error(t, err)
	assert.Equal(t, CodeUnsupportedFileType, ErrCode(err))
}
