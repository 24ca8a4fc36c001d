package contracts

import "context"

type StorageService interface {
	UploadProfilePicture(ctx context.Context, ownerID string, data []byte, extension string) (objectURL string, err error)
}
