package utils

import (
	"errors"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var appEnvironment = "development"

// SetEnvironment is called once at startup; error bodies hide the
// underlying message when the environment is production.
func SetEnvironment(env string) {
	appEnvironment = env
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	writeJSON(w, code, response)
}

// BuildCheckoutSessionResponse keys the payload as "session", the shape the
// checkout endpoint's clients depend on.
func BuildCheckoutSessionResponse(w http.ResponseWriter, code int, message string, session interface{}) {
	response := responses.CheckoutResponseDTO{
		Success: true,
		Message: message,
		Session: session,
	}
	writeJSON(w, code, response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	response := responses.ErrorResponseDTO{
		Success: false,
		Message: clientMessage,
	}

	// Underlying messages are exposed outside production only.
	if customErr != nil && appEnvironment != "production" {
		response.Error = customErr.DevMessage
	}

	writeJSON(w, code, response)
}

func writeJSON(w http.ResponseWriter, code int, response interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
