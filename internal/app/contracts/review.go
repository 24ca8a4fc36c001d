package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, reviewModel *models.Review) (reviewID string, err error)
	FindAll(ctx context.Context) ([]models.Review, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Review, error)
}
