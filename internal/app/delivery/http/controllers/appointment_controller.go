package controllers

import (
	"encoding/json"
	"net/http"

	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/delivery/http/middlewares"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/exceptions"
	"agendly-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Usecase contracts.AppointmentUsecase
	Log     *zap.Logger
}

func NewAppointmentController(usecase contracts.AppointmentUsecase, log *zap.Logger) *AppointmentController {
	return &AppointmentController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := &requests.CreateAppointment{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.CreateAppointment(r.Context(), session.UserID, request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseCreated, result)
}

func (c *AppointmentController) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "appointmentID"))
		return
	}

	result, err := c.Usecase.GetAppointmentByID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (c *AppointmentController) GetAppointmentsByProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "providerID"))
		return
	}

	result, err := c.Usecase.GetAppointmentsByProvider(r.Context(), providerID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (c *AppointmentController) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	result, err := c.Usecase.GetAppointmentsByCustomer(r.Context(), session.UserID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}

func (c *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "appointmentID"))
		return
	}

	request := &requests.UpdateAppointmentStatus{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := c.Usecase.UpdateAppointmentStatus(r.Context(), appointmentID, request.Status)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}
