package auth

import (
	"agendly-service/internal/app/config"
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"agendly-service/internal/pkg/exceptions"
	"agendly-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type authUsecase struct {
	userRepository  contracts.UserRepository
	redisRepository contracts.RedisRepository
	internalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		userRepository:  userRepository,
		redisRepository: redisRepository,
		internalConfig:  internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	existing, err := uc.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Password: hashed,
		FullName: request.FullName,
		Role:     request.Role,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{UserID: userID, Email: user.Email}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.userRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionTTL := time.Duration(uc.internalConfig.App.SessionTTLInHour) * time.Hour
	session := models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	err = uc.redisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.internalConfig.JWT.Secret, uc.internalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{Token: token}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.redisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.internalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	raw, err := uc.redisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf("%s: session expired", constvars.ErrDevAuthInvalidSession))
	}
	return &session, nil
}
