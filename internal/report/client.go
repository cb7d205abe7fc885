package report

import (
	"context"
	"time"

	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type Client interface {
	PaymentMethods(ctx context.Context, from, to time.Time) ([]model.PaymentMethodReportRow, error)
	TopSellingProducts(ctx context.Context, from, to time.Time, limit int) ([]model.TopSellingProductRow, error)
}
