package storage

import (
	"bytes"
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorageService(client *minio.Client, driverConfig *config.DriverConfig) contracts.StorageService {
	return &minioStorageService{
		client:     client,
		bucketName: driverConfig.Minio.BucketName,
	}
}

func (s *minioStorageService) UploadProfilePicture(ctx context.Context, ownerID string, data []byte, extension string) (string, error) {
	objectName := fmt.Sprintf("profile-pictures/%s-%s%s", ownerID, uuid.NewString(), extension)
	contentType := contentTypeByExtension(extension)

	_, err := s.client.PutObject(
		ctx,
		s.bucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", exceptions.ErrStorageUpload(err)
	}

	return fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucketName, objectName), nil
}

func contentTypeByExtension(extension string) string {
	switch strings.ToLower(extension) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg", ".jpe":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
