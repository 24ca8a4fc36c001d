package bookings

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	Log               *zap.Logger
	BookingRepository contracts.BookingRepository
	DoctorRepository  contracts.DoctorRepository
	UserRepository    contracts.UserRepository
	PaymentGateway    contracts.PaymentGatewayService
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
}

func NewBookingUsecase(
	logger *zap.Logger,
	bookingRepository contracts.BookingRepository,
	doctorRepository contracts.DoctorRepository,
	userRepository contracts.UserRepository,
	paymentGateway contracts.PaymentGatewayService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
) BookingUsecase {
	return &bookingUsecase{
		Log:               logger,
		BookingRepository: bookingRepository,
		DoctorRepository:  doctorRepository,
		UserRepository:    userRepository,
		PaymentGateway:    paymentGateway,
		MailerService:     mailerService,
		InternalConfig:    internalConfig,
	}
}

// GetCheckoutSession runs the booking flow: look up the doctor and the
// authenticated user, open a hosted checkout session with the gateway, and
// persist a booking that snapshots the doctor's price and references the
// session. The booking is recorded as soon as the session exists; payment
// settlement is not verified here.
func (uc *bookingUsecase) GetCheckoutSession(ctx context.Context, request *requests.CheckoutSession) (*responses.CheckoutSession, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, asCheckoutError(err)
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, asCheckoutError(err)
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	gatewayRequest := &requests.GatewaySession{
		SuccessURL:         uc.InternalConfig.App.ClientSiteURL + constvars.CheckoutSuccessURLPath,
		CancelURL:          fmt.Sprintf(constvars.CheckoutCancelURLFormat, request.Scheme, request.Host, doctor.ID),
		CustomerEmail:      user.Email,
		ClientReferenceID:  doctor.ID,
		UnitAmount:         doctor.TicketPrice * 100,
		Quantity:           1,
		ProductName:        doctor.Name,
		ProductDescription: doctor.Bio,
	}
	if doctor.Photo != "" {
		gatewayRequest.ProductImages = []string{doctor.Photo}
	}

	session, err := uc.PaymentGateway.CreateCheckoutSession(ctx, gatewayRequest)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		DoctorID:    doctor.ID,
		UserID:      user.ID,
		TicketPrice: doctor.TicketPrice,
		SessionID:   session.ID,
		Status:      constvars.BookingStatusPending,
		IsPaid:      false,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, asCheckoutError(err)
	}

	uc.Log.Info("booking created for checkout session",
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)

	uc.queueConfirmationEmail(ctx, user, doctor, session.ID)

	return session, nil
}

func (uc *bookingUsecase) GetBookingsByUser(ctx context.Context, userID string) ([]responses.Booking, error) {
	bookings, err := uc.BookingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, responses.Booking{
			ID:          booking.ID,
			DoctorID:    booking.DoctorID,
			UserID:      booking.UserID,
			TicketPrice: booking.TicketPrice,
			Session:     booking.SessionID,
			Status:      booking.Status,
			IsPaid:      booking.IsPaid,
			CreatedAt:   booking.CreatedAt,
		})
	}
	return result, nil
}

// asCheckoutError makes every server-side failure inside the checkout flow
// read the same to the client. 4xx errors keep their own messages.
func asCheckoutError(err error) error {
	if customErr, ok := err.(*exceptions.CustomError); ok {
		if customErr.StatusCode >= constvars.StatusInternalServerError {
			customErr.ClientMessage = constvars.ErrClientCheckoutSession
		}
		return customErr
	}
	return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientCheckoutSession, constvars.ErrDevCheckoutFlowFailed)
}

// queueConfirmationEmail is best effort: a mailer outage must not fail a
// booking that the gateway and the database already accepted.
func (uc *bookingUsecase) queueConfirmationEmail(ctx context.Context, user *models.User, doctor *models.Doctor, sessionID string) {
	if uc.MailerService == nil {
		return
	}

	payload := utils.BuildBookingConfirmationEmailPayload(
		uc.InternalConfig.App.MailerEmailSender,
		user.Email,
		user.Name,
		doctor.Name,
		uc.InternalConfig.Stripe.Currency,
		doctor.TicketPrice,
		sessionID,
	)

	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Error("failed to queue booking confirmation email",
			zap.Error(err),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
	}
}
