package cart

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/cart/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

// Client wraps the cart backend. Every mutation is a round-trip; the
// returned cart is the new source of truth.
type Client interface {
	Get(ctx context.Context) (*model.Cart, error)
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Cart, error)
	UpdateItem(ctx context.Context, productID int64, input *dto.UpdateItemInput) (*model.Cart, error)
	RemoveItem(ctx context.Context, productID int64) (*model.Cart, error)

	Checkout(ctx context.Context) (*model.Checkout, error)
	SetShipping(ctx context.Context, input *dto.SetShippingInput) (*model.Checkout, error)
}
