package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of %s",
	"gte":      "must be at least %s",
	"lte":      "must be at most %s",
}

// Error messages for clients.
const (
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientUserNotFound                  = "User not found"
	ErrClientBookingNotFound               = "Booking not found"
	ErrClientCheckoutSession               = "Error creating checkout session"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientInvalidImageFormat            = "invalid image format"
)

// Error messages for developers.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON request body"
	ErrDevCannotMarshalJSON          = "cannot marshal value to JSON"
	ErrDevDoctorNotExists            = "doctor does not exist in database"
	ErrDevUserNotExists              = "user does not exist in database"
	ErrDevEmailAlreadyExists         = "email is already registered"
	ErrDevInvalidCredentials         = "email and password do not match any account"
	ErrDevFailedToHashPassword       = "failed to hash the given password"
	ErrDevAuthTokenMissing           = "authorization token is missing from the request"
	ErrDevAuthTokenInvalid           = "authorization token cannot be parsed or verified"
	ErrDevAuthSigningMethod          = "unexpected JWT signing method"
	ErrDevAuthGenerateToken          = "failed to sign session token"
	ErrDevAuthInvalidSession         = "session is missing or expired in session store"
	ErrDevServerDeadlineExceeded     = "handler context deadline exceeded"
	ErrDevMongoDBFindDocument        = "mongodb failed to find document"
	ErrDevMongoDBInsertDocument      = "mongodb failed to insert document"
	ErrDevMongoDBUpdateDocument      = "mongodb failed to update document"
	ErrDevMongoDBNotObjectID         = "given id is not a valid mongodb object id"
	ErrDevRedisSet                   = "redis failed to set key"
	ErrDevRedisGet                   = "redis failed to get key: %s"
	ErrDevRedisDelete                = "redis failed to delete key"
	ErrDevPaymentGatewaySession      = "payment gateway failed to create checkout session"
	ErrDevCheckoutFlowFailed         = "checkout session flow failed"
	ErrDevMailerPublish              = "failed to publish email payload to mailer queue"
	ErrDevSMTPSendEmail              = "smtp server %s failed to send email"
	ErrDevStorageUpload              = "object storage failed to upload file"
	ErrDevImageValidationFailed      = "profile picture failed image validation"
	ErrDevDoctorProfileNotOwnedByYou = "authenticated account is not a doctor profile"
)

const ResponseUnknown = "unknown"
