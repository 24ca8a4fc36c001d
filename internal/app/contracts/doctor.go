package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindApproved(ctx context.Context, query string) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error
	UpdateRating(ctx context.Context, doctorID string, totalRating int, averageRating float64) error
}
