package payment_gateway

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

type stripeService struct {
	client   *client.API
	currency string
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	sc := &client.API{}
	sc.Init(internalConfig.Stripe.SecretKey, nil)
	return &stripeService{
		client:   sc,
		currency: internalConfig.Stripe.Currency,
	}
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, request *requests.GatewaySession) (*responses.CheckoutSession, error) {
	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(request.ProductName),
	}
	// Stripe rejects empty-string descriptions and image URLs outright.
	if request.ProductDescription != "" {
		productData.Description = stripe.String(request.ProductDescription)
	}
	if len(request.ProductImages) > 0 {
		productData.Images = stripe.StringSlice(request.ProductImages)
	}

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(request.SuccessURL),
		CancelURL:          stripe.String(request.CancelURL),
		CustomerEmail:      stripe.String(request.CustomerEmail),
		ClientReferenceID:  stripe.String(request.ClientReferenceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(s.currency),
					UnitAmount:  stripe.Int64(request.UnitAmount),
					ProductData: productData,
				},
				Quantity: stripe.Int64(request.Quantity),
			},
		},
	}

	session, err := s.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayCreateSession(err)
	}

	response := &responses.CheckoutSession{
		ID:            session.ID,
		URL:           session.URL,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
		CustomerEmail: session.CustomerEmail,
	}
	return response, nil
}
