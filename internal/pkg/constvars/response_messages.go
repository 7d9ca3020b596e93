package constvars

const (
	ResponseSuccess = "Success"
	ResponseCreated = "Created"
	ResponseUnknown = "unknown"
)

// CustomValidationErrorMessages maps validator tags to human sentences.
// Tags listed in TagsWithParams carry a %s placeholder for the tag param.
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"email":              "must be a valid email address",
	"min":                "must be at least %s characters",
	"max":                "must be at most %s characters",
	"oneof":              "must be one of: %s",
	"day_of_week":        "must be an uppercase English day name",
	"clock_time":         "must be a valid HH:MM or HH:MM:SS time",
	"appointment_status": "must be a valid appointment status",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
