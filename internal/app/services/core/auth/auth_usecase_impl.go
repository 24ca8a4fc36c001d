package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:   userRepository,
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		InternalConfig:   internalConfig,
	}
}

// Register creates a patient account in the users collection or a doctor
// account in the doctors collection. Doctor accounts start unapproved and
// stay out of public listings until an admin flips the flag.
func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	if err := uc.ensureEmailUnused(ctx, request.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}
	request.HashedPassword = hashedPassword

	now := time.Now()
	var accountID string
	switch request.Role {
	case constvars.RoleDoctor:
		doctor := &models.Doctor{
			Email:    request.Email,
			Password: request.HashedPassword,
			Name:     request.Name,
			Phone:    request.Phone,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		accountID, err = uc.DoctorRepository.CreateDoctor(ctx, doctor)
	default:
		user := &models.User{
			Email:    request.Email,
			Password: request.HashedPassword,
			Name:     request.Name,
			Phone:    request.Phone,
			Role:     constvars.RolePatient,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		accountID, err = uc.UserRepository.CreateUser(ctx, user)
	}
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		UserID: accountID,
		Role:   request.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	accountID, role, hashedPassword, err := uc.findAccountByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if accountID == "" {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, hashedPassword) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := models.Session{
		UserID: accountID,
		Role:   role,
		Email:  request.Email,
	}

	sessionID := uuid.NewString()
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.RedisRepository.Set(ctx, constvars.SessionKeyPrefix+sessionID, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, sessionTTL)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		Role:  role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, request *requests.Logout) error {
	return uc.RedisRepository.Delete(ctx, constvars.SessionKeyPrefix+request.SessionID)
}

func (uc *authUsecase) ensureEmailUnused(ctx context.Context, email string) error {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if doctor != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}
	return nil
}

// findAccountByEmail checks the users collection first, then doctors, the
// same order the login endpoint has always resolved accounts in.
func (uc *authUsecase) findAccountByEmail(ctx context.Context, email string) (accountID, role, hashedPassword string, err error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", "", "", err
	}
	if user != nil {
		return user.ID, user.Role, user.Password, nil
	}

	doctor, err := uc.DoctorRepository.FindByEmail(ctx, email)
	if err != nil {
		return "", "", "", err
	}
	if doctor != nil {
		return doctor.ID, constvars.RoleDoctor, doctor.Password, nil
	}
	return "", "", "", nil
}
