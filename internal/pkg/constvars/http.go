package constvars

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	HeaderXRequestID = "X-Request-ID"

	AuthBearerPrefix = "Bearer "

	MIMEApplicationJSON = "application/json"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)
