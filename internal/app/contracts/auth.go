package contracts

import (
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}
