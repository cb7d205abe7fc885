package purchase

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/purchase/dto"
)

type Client interface {
	Create(ctx context.Context, input *dto.CreatePurchaseOrderInput) (*model.PurchaseOrder, error)
	FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.PurchaseOrder], error)
	FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error)

	// Simulate asks the purchasing backend to play out the delivery and
	// fill each line's outcome (COMPLETE / PARTIAL / NOT_AVAILABLE).
	Simulate(ctx context.Context, id int64) (*model.PurchaseOrder, error)

	// Confirm finalizes the received quantities of a simulated order.
	Confirm(ctx context.Context, id int64, input *dto.ConfirmPurchaseOrderInput) (*model.PurchaseOrder, error)
}
