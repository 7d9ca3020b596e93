package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendly-service/internal/app/config"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) FindByProviderID(ctx context.Context, providerID string) ([]models.Availability, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) ReplaceForProvider(ctx context.Context, providerID string, records []models.Availability) error {
	args := m.Called(ctx, providerID, records)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			AvailabilityCacheInMinute: 10,
		},
	}
}

func TestAvailabilityUsecase_GetWeeklyTemplate(t *testing.T) {
	t.Run("cache miss hydrates from storage and fills the cache", func(t *testing.T) {
		mockRepo := new(MockAvailabilityRepository)
		mockRedis := new(MockRedisRepository)

		persisted := []models.Availability{
			{ProviderID: "prov-1", DayOfWeek: "WEDNESDAY", StartTime: "10:00:00", EndTime: "15:00:00"},
		}
		mockRedis.On("Get", mock.Anything, "availability:provider:prov-1").Return("", nil)
		mockRepo.On("FindByProviderID", mock.Anything, "prov-1").Return(persisted, nil)
		mockRedis.On("Set", mock.Anything, "availability:provider:prov-1", mock.Anything, 10*time.Minute).Return(nil)

		uc := NewAvailabilityUsecase(mockRepo, mockRedis, newTestConfig(), zap.NewNop())
		windows, err := uc.GetWeeklyTemplate(context.Background(), "prov-1")

		assert.NoError(t, err)
		assert.Len(t, windows, 7)
		for _, w := range windows {
			if w.DayOfWeek == "WEDNESDAY" {
				assert.True(t, w.Available)
				assert.Equal(t, "10:00", w.StartTime)
				assert.Equal(t, "15:00", w.EndTime)
				continue
			}
			assert.False(t, w.Available)
		}
		mockRepo.AssertExpectations(t)
		mockRedis.AssertExpectations(t)
	})

	t.Run("cache write failure does not fail the read", func(t *testing.T) {
		mockRepo := new(MockAvailabilityRepository)
		mockRedis := new(MockRedisRepository)

		mockRedis.On("Get", mock.Anything, mock.Anything).Return("", nil)
		mockRepo.On("FindByProviderID", mock.Anything, "prov-1").Return([]models.Availability{}, nil)
		mockRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		uc := NewAvailabilityUsecase(mockRepo, mockRedis, newTestConfig(), zap.NewNop())
		windows, err := uc.GetWeeklyTemplate(context.Background(), "prov-1")

		assert.NoError(t, err)
		assert.Len(t, windows, 7)
	})
}

func TestAvailabilityUsecase_SetWeeklyTemplate(t *testing.T) {
	mockRepo := new(MockAvailabilityRepository)
	mockRedis := new(MockRedisRepository)

	var stored []models.Availability
	mockRepo.On("ReplaceForProvider", mock.Anything, "prov-1", mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(2).([]models.Availability)
		}).
		Return(nil)
	mockRedis.On("Delete", mock.Anything, "availability:provider:prov-1").Return(nil)

	uc := NewAvailabilityUsecase(mockRepo, mockRedis, newTestConfig(), zap.NewNop())

	entries := []requests.AvailabilityEntry{
		{DayOfWeek: "MONDAY", StartTime: "08:30", EndTime: "16:30"},
	}
	windows, err := uc.SetWeeklyTemplate(context.Background(), "prov-1", entries)

	assert.NoError(t, err)
	assert.Len(t, windows, 7)
	assert.Len(t, stored, 7)

	for _, rec := range stored {
		assert.Equal(t, "prov-1", rec.ProviderID)
		if rec.DayOfWeek == "MONDAY" {
			assert.True(t, *rec.Available)
			assert.Equal(t, "08:30:00", rec.StartTime)
			assert.Equal(t, "16:30:00", rec.EndTime)
			continue
		}
		assert.False(t, *rec.Available)
		assert.Equal(t, "00:00:00", rec.StartTime)
		assert.Equal(t, "00:00:00", rec.EndTime)
	}
	mockRepo.AssertExpectations(t)
	mockRedis.AssertExpectations(t)
}
