package filestorage

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/zedhire/zedhire/internal/pkg/apperrors"
)

func resumeHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name   string
		header *multipart.FileHeader
		err    error
	}{
		{"valid pdf", resumeHeader("cv.pdf", "application/pdf", 1024), nil},
		{"pdf extension without content type", resumeHeader("cv.pdf", "", 1024), nil},
		{"pdf content type odd extension", resumeHeader("cv.bin", "application/pdf", 1024), nil},
		{"exactly at the size limit", resumeHeader("cv.pdf", "application/pdf", ResumeMaxSize), nil},
		{"over the size limit", resumeHeader("cv.pdf", "application/pdf", ResumeMaxSize+1), apperrors.ErrFileTooLarge},
		{"word document", resumeHeader("cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1024), apperrors.ErrInvalidFileType},
		{"image file", resumeHeader("cv.png", "image/png", 1024), apperrors.ErrInvalidFileType},
		{"nil header", nil, apperrors.ErrInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResume(tt.header)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("ValidateResume() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidateResume() = %v, want %v", err, tt.err)
			}
		})
	}
}
