package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"agendly-service/internal/app/contracts"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/exceptions"
	"agendly-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Usecase contracts.AuthUsecase
	Log     *zap.Logger
}

func NewAuthController(usecase contracts.AuthUsecase, log *zap.Logger) *AuthController {
	return &AuthController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	request := &requests.Register{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.Register(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseCreated, result)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := &requests.Login{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.Login(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	session, err := c.Usecase.ResolveSession(r.Context(), token)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	if err := c.Usecase.Logout(r.Context(), session.SessionID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
}
