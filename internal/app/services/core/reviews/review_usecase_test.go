package reviews

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepository struct {
	reviews []models.Review
}

func (f *fakeReviewRepository) CreateReview(ctx context.Context, reviewModel *models.Review) (string, error) {
	f.reviews = append(f.reviews, *reviewModel)
	return "review-1", nil
}

func (f *fakeReviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Review, error) {
	result := make([]models.Review, 0, len(f.reviews))
	for _, review := range f.reviews {
		if review.DoctorID == doctorID {
			result = append(result, review)
		}
	}
	return result, nil
}

type fakeDoctorRepository struct {
	doctors       map[string]*models.Doctor
	totalRating   int
	averageRating float64
	ratingUpdates int
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	return "", nil
}

func (f *fakeDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepository) FindApproved(ctx context.Context, query string) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) UpdateRating(ctx context.Context, doctorID string, totalRating int, averageRating float64) error {
	f.ratingUpdates++
	f.totalRating = totalRating
	f.averageRating = averageRating
	return nil
}

func TestCreateReview(t *testing.T) {
	t.Run("First review sets the doctor average to the rating", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", TotalRating: 0, AverageRating: 0},
		}}
		usecase := NewReviewUsecase(&fakeReviewRepository{}, doctorRepo)

		review, err := usecase.CreateReview(context.Background(), &requests.CreateReview{
			DoctorID:   "doc-1",
			UserID:     "user-1",
			ReviewText: "Very helpful",
			Rating:     4,
		})

		require.NoError(t, err)
		assert.Equal(t, "review-1", review.ID)
		assert.Equal(t, 1, doctorRepo.ratingUpdates)
		assert.Equal(t, 1, doctorRepo.totalRating)
		assert.InDelta(t, 4.0, doctorRepo.averageRating, 1e-9)
	})

	t.Run("Later reviews fold into the running average", func(t *testing.T) {
		doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
			"doc-1": {ID: "doc-1", TotalRating: 3, AverageRating: 4},
		}}
		usecase := NewReviewUsecase(&fakeReviewRepository{}, doctorRepo)

		_, err := usecase.CreateReview(context.Background(), &requests.CreateReview{
			DoctorID:   "doc-1",
			UserID:     "user-1",
			ReviewText: "Average visit",
			Rating:     2,
		})

		require.NoError(t, err)
		assert.Equal(t, 4, doctorRepo.totalRating)
		// (4*3 + 2) / 4
		assert.InDelta(t, 3.5, doctorRepo.averageRating, 1e-9)
	})

	t.Run("Unknown doctor returns 404", func(t *testing.T) {
		reviewRepo := &fakeReviewRepository{}
		usecase := NewReviewUsecase(reviewRepo, &fakeDoctorRepository{doctors: map[string]*models.Doctor{}})

		_, err := usecase.CreateReview(context.Background(), &requests.CreateReview{
			DoctorID:   "missing",
			UserID:     "user-1",
			ReviewText: "anything",
			Rating:     5,
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Empty(t, reviewRepo.reviews)
	})
}

func TestGetReviewsByDoctor(t *testing.T) {
	reviewRepo := &fakeReviewRepository{reviews: []models.Review{
		{ID: "r-1", DoctorID: "doc-1", UserID: "user-1", Rating: 5},
		{ID: "r-2", DoctorID: "doc-2", UserID: "user-2", Rating: 3},
	}}
	doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1"},
	}}
	usecase := NewReviewUsecase(reviewRepo, doctorRepo)

	t.Run("Returns only the doctor's reviews", func(t *testing.T) {
		result, err := usecase.GetReviewsByDoctor(context.Background(), "doc-1")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "r-1", result[0].ID)
	})

	t.Run("Unknown doctor returns 404", func(t *testing.T) {
		_, err := usecase.GetReviewsByDoctor(context.Background(), "missing")

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
