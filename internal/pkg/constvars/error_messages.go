package constvars

// Client-facing messages. Kept generic so internals never leak.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid email or password"
	ErrClientEmailAlreadyExists            = "Email is already registered"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
)

// Developer-facing messages, logged and shown outside production only.
const (
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotParseDate           = "Failed to parse date value"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevURLParamValidationFailed  = "URL parameter '%s' validation failed"
	ErrDevInvalidViewMode           = "Invalid calendar view mode"
	ErrDevFailedToHashPassword      = "Failed to hash password"
	ErrDevInvalidCredentials        = "Invalid credentials"
	ErrDevEmailAlreadyExists        = "Email already exists in users collection"
	ErrDevUserNotExists             = "User does not exist"
	ErrDevAppointmentNotExists      = "Appointment does not exist"
	ErrDevInvalidAppointmentStatus  = "Invalid appointment status value"
	ErrDevAuthTokenMissing          = "Authorization token is missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "Failed to generate auth token"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "Session is missing or expired"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate documents"
	ErrDevDBStringNotObjectID        = "String is not a valid MongoDB ObjectID"

	ErrDevRedisGetNoData  = "Redis returned no data for key %s"
	ErrDevRedisGetData    = "Redis failed to get data"
	ErrDevRedisSetData    = "Redis failed to set data"
	ErrDevRedisDeleteData = "Redis failed to delete data"
	ErrDevRedisUnlock     = "Redis failed to release lock"
	ErrDevRabbitMQPublish = "RabbitMQ failed to publish message to queue %s"
	ErrDevServerProcess   = "Server failed to process the request"
)
