package order

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type Client interface {
	// FindMine lists the calling user's orders; the backend scopes by the
	// bearer token.
	FindMine(ctx context.Context, params listquery.Params) (*model.Page[model.Order], error)
	FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.Order], error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
