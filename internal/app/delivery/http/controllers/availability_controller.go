package controllers

import (
	"encoding/json"
	"net/http"

	"agendly-service/internal/app/contracts"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/exceptions"
	"agendly-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Usecase contracts.AvailabilityUsecase
	Log     *zap.Logger
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecase, log *zap.Logger) *AvailabilityController {
	return &AvailabilityController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AvailabilityController) GetWeeklyTemplate(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "providerID"))
		return
	}

	result, err := c.Usecase.GetWeeklyTemplate(r.Context(), providerID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (c *AvailabilityController) SetWeeklyTemplate(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "providerID"))
		return
	}

	var entries []requests.AvailabilityEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	for _, entry := range entries {
		if err := utils.ValidateStruct(entry); err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	result, err := c.Usecase.SetWeeklyTemplate(r.Context(), providerID, entries)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}
