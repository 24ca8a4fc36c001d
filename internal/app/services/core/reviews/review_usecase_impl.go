package reviews

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"time"
)

type reviewUsecase struct {
	ReviewRepository contracts.ReviewRepository
	DoctorRepository contracts.DoctorRepository
}

func NewReviewUsecase(reviewRepository contracts.ReviewRepository, doctorRepository contracts.DoctorRepository) ReviewUsecase {
	return &reviewUsecase{
		ReviewRepository: reviewRepository,
		DoctorRepository: doctorRepository,
	}
}

func (uc *reviewUsecase) GetAllReviews(ctx context.Context) ([]responses.Review, error) {
	reviewsList, err := uc.ReviewRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviewsList), nil
}

func (uc *reviewUsecase) GetReviewsByDoctor(ctx context.Context, doctorID string) ([]responses.Review, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	reviewsList, err := uc.ReviewRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviewsList), nil
}

// CreateReview stores the review, then folds it into the doctor's rating
// aggregate so listings can sort by average without scanning reviews.
func (uc *reviewUsecase) CreateReview(ctx context.Context, request *requests.CreateReview) (*responses.Review, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	now := time.Now()
	review := &models.Review{
		DoctorID:   request.DoctorID,
		UserID:     request.UserID,
		ReviewText: request.ReviewText,
		Rating:     request.Rating,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	reviewID, err := uc.ReviewRepository.CreateReview(ctx, review)
	if err != nil {
		return nil, err
	}
	review.ID = reviewID

	totalRating := doctor.TotalRating + 1
	averageRating := (doctor.AverageRating*float64(doctor.TotalRating) + request.Rating) / float64(totalRating)
	if err := uc.DoctorRepository.UpdateRating(ctx, doctor.ID, totalRating, averageRating); err != nil {
		return nil, err
	}

	return &responses.Review{
		ID:         review.ID,
		DoctorID:   review.DoctorID,
		UserID:     review.UserID,
		ReviewText: review.ReviewText,
		Rating:     review.Rating,
		CreatedAt:  review.CreatedAt,
	}, nil
}

func buildReviewResponses(reviewsList []models.Review) []responses.Review {
	result := make([]responses.Review, 0, len(reviewsList))
	for _, review := range reviewsList {
		result = append(result, responses.Review{
			ID:         review.ID,
			DoctorID:   review.DoctorID,
			UserID:     review.UserID,
			ReviewText: review.ReviewText,
			Rating:     review.Rating,
			CreatedAt:  review.CreatedAt,
		})
	}
	return result
}
