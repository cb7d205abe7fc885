package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/cart"
	"github.com/lucasbarrena/shopsphere-gateway/internal/cart/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/payment"
)

type cartUseCase struct {
	client  cart.Client
	payment payment.Client
	logger  *zap.Logger
}

func NewCartUseCase(client cart.Client, pay payment.Client, log *zap.Logger) cart.UseCase {
	return &cartUseCase{client: client, payment: pay, logger: log}
}

func (uc *cartUseCase) GetCart(ctx context.Context) (*model.Cart, error) {
	return uc.client.Get(ctx)
}

func (uc *cartUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Cart, error) {
	return uc.client.AddItem(ctx, input)
}

func (uc *cartUseCase) UpdateItem(ctx context.Context, productID int64, input *dto.UpdateItemInput) (*model.Cart, error) {
	return uc.client.UpdateItem(ctx, productID, input)
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, productID int64) (*model.Cart, error) {
	return uc.client.RemoveItem(ctx, productID)
}

func (uc *cartUseCase) Checkout(ctx context.Context) (*model.Checkout, error) {
	co, err := uc.client.Checkout(ctx)
	if err != nil {
		return nil, err
	}
	uc.crossCheck(co)
	return co, nil
}

func (uc *cartUseCase) SetShipping(ctx context.Context, input *dto.SetShippingInput) (*model.Checkout, error) {
	co, err := uc.client.SetShipping(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.crossCheck(co)
	return co, nil
}

func (uc *cartUseCase) CreatePaymentPreference(ctx context.Context) (*model.PaymentPreference, error) {
	return uc.payment.CreatePreference(ctx, uuid.New().String())
}

// crossCheck recomputes subtotal and total from the line items and logs
// disagreement with the server's figures. The server's numbers are still
// the ones shown; inventing pricing here would risk drift between the
// displayed and charged amounts.
func (uc *cartUseCase) crossCheck(co *model.Checkout) {
	subtotal := decimal.Zero
	for _, item := range co.Items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if !subtotal.Equal(co.Subtotal) {
		uc.logger.Warn("checkout subtotal mismatch",
			zap.String("server", co.Subtotal.String()),
			zap.String("computed", subtotal.String()),
		)
	}

	if !co.Subtotal.Add(co.ShippingCost).Equal(co.Total) {
		uc.logger.Warn("checkout total mismatch",
			zap.String("subtotal", co.Subtotal.String()),
			zap.String("shipping", co.ShippingCost.String()),
			zap.String("total", co.Total.String()),
		)
	}
}
