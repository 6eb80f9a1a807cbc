package file

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siteledger/siteledger-backend-go/internal/domain/employee"
	"github.com/siteledger/siteledger-backend-go/internal/pkg/storage"
)

// MaxPhotoSize caps employee photo uploads at 500KB.
const MaxPhotoSize = 500 * 1024

var allowedPhotoTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type FileService interface {
	// UploadEmployeePhoto stores the photo and returns its public URL.
	UploadEmployeePhoto(ctx context.Context, f multipart.File, header *multipart.FileHeader) (string, error)
	DeleteFile(ctx context.Context, path string) error
}

type FileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &FileServiceImpl{storage: fileStorage}
}

// UploadEmployeePhoto implements FileService.
func (s *FileServiceImpl) UploadEmployeePhoto(ctx context.Context, f multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxPhotoSize {
		return "", employee.ErrPhotoTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedPhotoTypes[ext]
	if !ok {
		return "", employee.ErrInvalidPhotoType
	}

	path := fmt.Sprintf("employees/%s%s", uuid.NewString(), ext)
	storedPath, err := s.storage.Upload(ctx, f, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url, err := s.storage.GetURL(ctx, storedPath, 24*time.Hour)
	if err != nil {
		return "", fmt.Errorf("failed to build photo URL: %w", err)
	}

	return url, nil
}

// DeleteFile implements FileService.
func (s *FileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}
