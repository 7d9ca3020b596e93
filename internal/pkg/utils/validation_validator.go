package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var clockTimeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("day_of_week", validateDayOfWeek)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Day names are matched case-sensitively against the canonical uppercase set.
func validateDayOfWeek(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY":
		return true
	}
	return false
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "PENDING", "CONFIRMED", "COMPLETED", "CANCELLED", "RESCHEDULED":
		return true
	}
	return false
}
