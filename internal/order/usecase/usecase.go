package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/fetch"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/order"
)

type orderUseCase struct {
	client order.Client
	latest *fetch.Latest
	logger *zap.Logger
}

func NewOrderUseCase(client order.Client, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		client: client,
		latest: fetch.NewLatest(),
		logger: log,
	}
}

func (uc *orderUseCase) MyOrders(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Order], error) {
	lctx, release := uc.latest.Bind(ctx, "my-orders:"+viewer)
	defer release()
	return uc.client.FindMine(lctx, params)
}

func (uc *orderUseCase) AdminOrders(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Order], error) {
	lctx, release := uc.latest.Bind(ctx, "admin-orders:"+viewer)
	defer release()
	return uc.client.FindAll(lctx, params)
}

func (uc *orderUseCase) OrderDetail(ctx context.Context, id int64) (*model.Order, error) {
	return uc.client.FindByID(ctx, id)
}

func (uc *orderUseCase) RequestStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	o, err := uc.client.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("order status updated",
		zap.Int64("order_id", id),
		zap.String("status", string(o.Status)),
	)
	return o, nil
}
