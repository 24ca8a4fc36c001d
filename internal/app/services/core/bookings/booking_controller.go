package bookings

import (
	"context"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) GetCheckoutSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.ContextUserIDKey).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := &requests.CheckoutSession{
		UserID:   userID,
		DoctorID: chi.URLParam(r, "doctorId"),
		Scheme:   utils.RequestScheme(r),
		Host:     r.Host,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	session, err := ctrl.BookingUsecase.GetCheckoutSession(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildCheckoutSessionResponse(w, constvars.StatusOK, constvars.CheckoutSuccessMessage, session)
}

func (ctrl *BookingController) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(constvars.ContextUserIDKey).(string)
	if !ok || userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.GetBookingsByUser(ctx, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingsSuccessMessage, bookings)
}
