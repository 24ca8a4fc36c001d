package doctors

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"time"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	StorageService   contracts.StorageService
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, storageService contracts.StorageService) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		StorageService:   storageService,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, query string) ([]responses.DoctorProfile, error) {
	doctorsList, err := uc.DoctorRepository.FindApproved(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorProfile, 0, len(doctorsList))
	for i := range doctorsList {
		result = append(result, *buildDoctorProfile(&doctorsList[i]))
	}
	return result, nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.DoctorProfile, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return buildDoctorProfile(doctor), nil
}

func (uc *doctorUsecase) UpdateProfileByID(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Phone != "" {
		doctor.Phone = request.Phone
	}
	if request.TicketPrice > 0 {
		doctor.TicketPrice = request.TicketPrice
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Qualifications != nil {
		doctor.Qualifications = request.Qualifications
	}
	if request.Experiences != nil {
		doctor.Experiences = request.Experiences
	}
	if request.Bio != "" {
		doctor.Bio = request.Bio
	}
	if request.About != "" {
		doctor.About = request.About
	}
	if request.TimeSlots != nil {
		doctor.TimeSlots = request.TimeSlots
	}

	if len(request.ProfilePictureData) > 0 {
		photoURL, err := uc.StorageService.UploadProfilePicture(ctx, doctor.ID, request.ProfilePictureData, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		doctor.Photo = photoURL
	}

	doctor.UpdatedAt = time.Now()
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	return buildDoctorProfile(doctor), nil
}

func buildDoctorProfile(doctor *models.Doctor) *responses.DoctorProfile {
	return &responses.DoctorProfile{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Photo:          doctor.Photo,
		TicketPrice:    doctor.TicketPrice,
		Specialization: doctor.Specialization,
		Qualifications: doctor.Qualifications,
		Experiences:    doctor.Experiences,
		Bio:            doctor.Bio,
		About:          doctor.About,
		TimeSlots:      doctor.TimeSlots,
		AverageRating:  doctor.AverageRating,
		TotalRating:    doctor.TotalRating,
		IsApproved:     doctor.IsApproved,
	}
}
