package stock

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

// Client reads stock movements from the replenishment service.
type Client interface {
	Movements(ctx context.Context, params listquery.Params) (*model.Page[model.StockMovement], error)
}
