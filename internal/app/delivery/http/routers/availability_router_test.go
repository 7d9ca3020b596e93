package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agendly-service/internal/app/config"
	"agendly-service/internal/app/delivery/http/controllers"
	"agendly-service/internal/app/delivery/http/middlewares"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GetWeeklyTemplate(ctx context.Context, providerID string) ([]responses.AvailabilityWindow, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.AvailabilityWindow), args.Error(1)
}

func (m *MockAvailabilityUsecase) SetWeeklyTemplate(ctx context.Context, providerID string, entries []requests.AvailabilityEntry) ([]responses.AvailabilityWindow, error) {
	args := m.Called(ctx, providerID, entries)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.AvailabilityWindow), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Register), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Login), args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func TestAvailabilityRouter(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			MaxRequests: 100,
		},
	}

	mockAvailabilityUsecase := new(MockAvailabilityUsecase)
	mockAuthUsecase := new(MockAuthUsecase)

	availabilityController := controllers.NewAvailabilityController(mockAvailabilityUsecase, logger)

	middlewareInstance := middlewares.NewMiddlewares(logger, mockAuthUsecase, internalConfig)

	router := chi.NewRouter()
	router.Route("/availability", func(r chi.Router) {
		attachAvailabilityRoutes(r, middlewareInstance, availabilityController)
	})

	t.Run("GetWeeklyTemplate is public", func(t *testing.T) {
		windows := []responses.AvailabilityWindow{
			{DayOfWeek: "MONDAY", Available: true, StartTime: "09:00", EndTime: "17:00"},
		}
		mockAvailabilityUsecase.On("GetWeeklyTemplate", mock.Anything, "prov-1").Return(windows, nil).Once()

		req := httptest.NewRequest("GET", "/availability/provider/prov-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		mockAvailabilityUsecase.AssertExpectations(t)
	})

	t.Run("SetWeeklyTemplate requires a bearer token", func(t *testing.T) {
		entries := []requests.AvailabilityEntry{
			{DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "17:00"},
		}
		jsonBody, _ := json.Marshal(entries)

		req := httptest.NewRequest("POST", "/availability/provider/prov-1", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("SetWeeklyTemplate with a valid session", func(t *testing.T) {
		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: "provider"}
		mockAuthUsecase.On("ResolveSession", mock.Anything, "valid-token").Return(session, nil).Once()

		windows := []responses.AvailabilityWindow{
			{DayOfWeek: "MONDAY", Available: true, StartTime: "08:00", EndTime: "16:00"},
		}
		mockAvailabilityUsecase.On("SetWeeklyTemplate", mock.Anything, "prov-1", mock.Anything).Return(windows, nil).Once()

		entries := []requests.AvailabilityEntry{
			{DayOfWeek: "MONDAY", StartTime: "08:00", EndTime: "16:00"},
		}
		jsonBody, _ := json.Marshal(entries)

		req := httptest.NewRequest("POST", "/availability/provider/prov-1", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockAvailabilityUsecase.AssertExpectations(t)
		mockAuthUsecase.AssertExpectations(t)
	})
}
