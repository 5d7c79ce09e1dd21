package filestorage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeleteFileResolvesURLPaths(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	resumeDir := filepath.Join(base, "resumes")
	if err := os.MkdirAll(resumeDir, os.ModePerm); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	target := filepath.Join(resumeDir, "cv.pdf")
	if err := os.WriteFile(target, []byte("pdf"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := storage.DeleteFile("/uploads/resumes/cv.pdf"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatal("expected file to be removed")
	}
}

func TestDeleteFileIsIdempotent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := storage.DeleteFile("/uploads/resumes/missing.pdf"); err != nil {
		t.Fatalf("deleting a missing file should not error, got %v", err)
	}
	if err := storage.DeleteFile(""); err != nil {
		t.Fatalf("deleting an empty path should not error, got %v", err)
	}
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := storage.DeleteFile("/uploads/../etc/passwd"); err == nil {
		t.Fatal("expected path traversal to be rejected")
	}
}
