package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	byEmail map[string]*models.User
	created []*models.User
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	f.created = append(f.created, userModel)
	return "user-1", nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	return nil
}

type fakeDoctorRepository struct {
	byEmail map[string]*models.Doctor
	created []*models.Doctor
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	f.created = append(f.created, doctorModel)
	return "doc-1", nil
}

func (f *fakeDoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	return f.byEmail[email], nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) FindApproved(ctx context.Context, query string) ([]models.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepository) UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) UpdateRating(ctx context.Context, doctorID string, totalRating int, averageRating float64) error {
	return nil
}

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
}

func TestRegister(t *testing.T) {
	t.Run("Patient lands in the users collection", func(t *testing.T) {
		userRepo := &fakeUserRepository{byEmail: map[string]*models.User{}}
		doctorRepo := &fakeDoctorRepository{byEmail: map[string]*models.Doctor{}}
		usecase := NewAuthUsecase(userRepo, doctorRepo, &fakeRedisRepository{data: map[string]string{}}, testInternalConfig())

		result, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Bilal Ahmed",
			Email:    "patient@example.com",
			Password: "supersecret",
			Role:     constvars.RolePatient,
		})

		require.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
		require.Len(t, userRepo.created, 1)
		assert.Empty(t, doctorRepo.created)
		assert.Equal(t, constvars.RolePatient, userRepo.created[0].Role)
		assert.NotEqual(t, "supersecret", userRepo.created[0].Password)
	})

	t.Run("Doctor lands in the doctors collection unapproved", func(t *testing.T) {
		userRepo := &fakeUserRepository{byEmail: map[string]*models.User{}}
		doctorRepo := &fakeDoctorRepository{byEmail: map[string]*models.Doctor{}}
		usecase := NewAuthUsecase(userRepo, doctorRepo, &fakeRedisRepository{data: map[string]string{}}, testInternalConfig())

		result, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Dr. Ayesha Khan",
			Email:    "doctor@example.com",
			Password: "supersecret",
			Role:     constvars.RoleDoctor,
		})

		require.NoError(t, err)
		assert.Equal(t, "doc-1", result.UserID)
		require.Len(t, doctorRepo.created, 1)
		assert.Empty(t, userRepo.created)
		assert.False(t, doctorRepo.created[0].IsApproved)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		userRepo := &fakeUserRepository{byEmail: map[string]*models.User{
			"taken@example.com": {ID: "user-9", Email: "taken@example.com"},
		}}
		doctorRepo := &fakeDoctorRepository{byEmail: map[string]*models.Doctor{}}
		usecase := NewAuthUsecase(userRepo, doctorRepo, &fakeRedisRepository{data: map[string]string{}}, testInternalConfig())

		_, err := usecase.Register(context.Background(), &requests.Register{
			Name:     "Someone Else",
			Email:    "taken@example.com",
			Password: "supersecret",
			Role:     constvars.RolePatient,
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	hashedPassword, err := utils.HashPassword("supersecret")
	require.NoError(t, err)

	userRepo := &fakeUserRepository{byEmail: map[string]*models.User{
		"patient@example.com": {ID: "user-1", Email: "patient@example.com", Password: hashedPassword, Role: constvars.RolePatient},
	}}
	doctorRepo := &fakeDoctorRepository{byEmail: map[string]*models.Doctor{
		"doctor@example.com": {ID: "doc-1", Email: "doctor@example.com", Password: hashedPassword},
	}}

	t.Run("Patient login stores a session and returns a token", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{}}
		usecase := NewAuthUsecase(userRepo, doctorRepo, redisRepo, testInternalConfig())

		result, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "patient@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, constvars.RolePatient, result.Role)
		require.Len(t, redisRepo.data, 1)

		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		require.NoError(t, err)

		var session models.Session
		require.NoError(t, json.Unmarshal([]byte(redisRepo.data[constvars.SessionKeyPrefix+sessionID]), &session))
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, constvars.RolePatient, session.Role)
	})

	t.Run("Doctor login resolves through the doctors collection", func(t *testing.T) {
		redisRepo := &fakeRedisRepository{data: map[string]string{}}
		usecase := NewAuthUsecase(userRepo, doctorRepo, redisRepo, testInternalConfig())

		result, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "doctor@example.com",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.Equal(t, constvars.RoleDoctor, result.Role)
	})

	t.Run("Wrong password is rejected", func(t *testing.T) {
		usecase := NewAuthUsecase(userRepo, doctorRepo, &fakeRedisRepository{data: map[string]string{}}, testInternalConfig())

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "patient@example.com",
			Password: "wrongpassword",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Unknown email is rejected with the same error", func(t *testing.T) {
		usecase := NewAuthUsecase(userRepo, doctorRepo, &fakeRedisRepository{data: map[string]string{}}, testInternalConfig())

		_, err := usecase.Login(context.Background(), &requests.Login{
			Email:    "nobody@example.com",
			Password: "supersecret",
		})

		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: map[string]string{
		constvars.SessionKeyPrefix + "abc-123": `{"user_id":"user-1"}`,
	}}
	usecase := NewAuthUsecase(
		&fakeUserRepository{byEmail: map[string]*models.User{}},
		&fakeDoctorRepository{byEmail: map[string]*models.Doctor{}},
		redisRepo,
		testInternalConfig(),
	)

	err := usecase.Logout(context.Background(), &requests.Logout{SessionID: "abc-123"})

	require.NoError(t, err)
	assert.Empty(t, redisRepo.data)
}
