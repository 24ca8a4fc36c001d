package users

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"time"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	StorageService contracts.StorageService
}

func NewUserUsecase(userRepository contracts.UserRepository, storageService contracts.StorageService) UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		StorageService: storageService,
	}
}

func (uc *userUsecase) GetProfileByID(ctx context.Context, userID string) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	return &responses.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Photo:     user.Photo,
		Gender:    user.Gender,
		BloodType: user.BloodType,
	}, nil
}

func (uc *userUsecase) UpdateProfileByID(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.Gender != "" {
		user.Gender = request.Gender
	}
	if request.BloodType != "" {
		user.BloodType = request.BloodType
	}

	if len(request.ProfilePictureData) > 0 {
		photoURL, err := uc.StorageService.UploadProfilePicture(ctx, user.ID, request.ProfilePictureData, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		user.Photo = photoURL
	}

	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return &responses.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Photo:     user.Photo,
		Gender:    user.Gender,
		BloodType: user.BloodType,
	}, nil
}
