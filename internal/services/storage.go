package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService persists uploaded resumes into the resume folder.
type StorageService interface {
	SaveResume(file *multipart.FileHeader) (string, error)
	EnsureResumeDir() error
}

type storageService struct {
	resumeFolder string
}

func NewStorageService(resumeFolder string) StorageService {
	return &storageService{resumeFolder: resumeFolder}
}

func (s *storageService) EnsureResumeDir() error {
	if err := os.MkdirAll(s.resumeFolder, 0755); err != nil {
		return fmt.Errorf("failed to create resume directory: %w", err)
	}
	return nil
}

// SaveResume stores an uploaded file under a unique name and returns its
// path. Only the resume extensions handled by the pipeline are accepted.
func (s *storageService) SaveResume(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !resumeExtensions[ext] {
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	uniqueFilename := fmt.Sprintf("%s_%s%s", base, uuid.New().String(), ext)
	filePath := filepath.Join(s.resumeFolder, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filePath, nil
}
