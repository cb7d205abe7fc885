package cart

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/cart/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type UseCase interface {
	GetCart(ctx context.Context) (*model.Cart, error)
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Cart, error)
	UpdateItem(ctx context.Context, productID int64, input *dto.UpdateItemInput) (*model.Cart, error)
	RemoveItem(ctx context.Context, productID int64) (*model.Cart, error)

	// Checkout returns the server's payload untouched; displayed amounts
	// are never recomputed here, only cross-checked and logged.
	Checkout(ctx context.Context) (*model.Checkout, error)
	SetShipping(ctx context.Context, input *dto.SetShippingInput) (*model.Checkout, error)
	CreatePaymentPreference(ctx context.Context) (*model.PaymentPreference, error)
}
