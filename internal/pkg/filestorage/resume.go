package filestorage

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/zedhire/zedhire/internal/pkg/apperrors"
)

// Resume upload constraints: PDF only, 5 MB max.
const (
	ResumeMaxSize     = 5 * 1024 * 1024
	ResumeContentType = "application/pdf"
	ResumeSubPath     = "resumes"
)

// ValidateResume checks an uploaded resume against the size and type
// constraints before it is written to storage.
func ValidateResume(fileHeader *multipart.FileHeader) error {
	if fileHeader == nil {
		return apperrors.ErrInvalidFileType
	}

	if fileHeader.Size > ResumeMaxSize {
		return apperrors.ErrFileTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if contentType != ResumeContentType && ext != ".pdf" {
		return apperrors.ErrInvalidFileType
	}

	return nil
}
