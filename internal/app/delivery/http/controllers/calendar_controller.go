package controllers

import (
	"net/http"
	"time"

	"agendly-service/internal/app/contracts"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/exceptions"
	"agendly-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CalendarController struct {
	Usecase contracts.CalendarUsecase
	Log     *zap.Logger
}

func NewCalendarController(usecase contracts.CalendarUsecase, log *zap.Logger) *CalendarController {
	return &CalendarController{
		Usecase: usecase,
		Log:     log,
	}
}

// GetView renders the provider calendar in the requested mode. The date query
// parameter defaults to today when omitted.
func (c *CalendarController) GetView(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerID")
	if providerID == "" {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamValidation(nil, "providerID"))
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "month"
	}

	now := time.Now()
	referenceDate := now
	if rawDate := r.URL.Query().Get("date"); rawDate != "" {
		parsed, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseDate(err))
			return
		}
		referenceDate = parsed
	}

	result, err := c.Usecase.BuildView(r.Context(), contracts.BuildCalendarViewInput{
		ProviderID:    providerID,
		Mode:          mode,
		ReferenceDate: referenceDate,
		Now:           now,
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, result)
}
