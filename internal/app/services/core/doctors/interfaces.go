package doctors

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, query string) ([]responses.DoctorProfile, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.DoctorProfile, error)
	UpdateProfileByID(ctx context.Context, doctorID string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
}
