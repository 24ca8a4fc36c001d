package users

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfileByID(ctx context.Context, userID string) (*responses.UserProfile, error)
	UpdateProfileByID(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
