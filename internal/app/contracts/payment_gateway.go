package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateCheckoutSession(ctx context.Context, request *requests.GatewaySession) (*responses.CheckoutSession, error)
}
