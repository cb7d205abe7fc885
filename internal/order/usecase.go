package order

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type UseCase interface {
	MyOrders(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Order], error)
	AdminOrders(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Order], error)
	OrderDetail(ctx context.Context, id int64) (*model.Order, error)

	// RequestStatus asks the backend for a transition and returns the
	// re-fetched order. Transition legality is entirely the backend's.
	RequestStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
