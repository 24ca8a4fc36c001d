package reviews

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type ReviewUsecase interface {
	GetAllReviews(ctx context.Context) ([]responses.Review, error)
	GetReviewsByDoctor(ctx context.Context, doctorID string) ([]responses.Review, error)
	CreateReview(ctx context.Context, request *requests.CreateReview) (*responses.Review, error)
}
