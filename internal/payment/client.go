package payment

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

// Client creates payment preferences against the mercado-pago facade.
// The returned token is handed to the embedded widget; no payment
// protocol lives in this gateway.
type Client interface {
	CreatePreference(ctx context.Context, idempotencyKey string) (*model.PaymentPreference, error)
}
