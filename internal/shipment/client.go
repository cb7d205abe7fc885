package shipment

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/shipment/dto"
)

type Client interface {
	Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error)
	UpdateStatus(ctx context.Context, id int64, input *dto.UpdateStatusInput) (*model.Shipment, error)
	FindByOrder(ctx context.Context, orderID int64) (*model.Shipment, error)
	// Track is public: anyone with a tracking code may follow a shipment.
	Track(ctx context.Context, code string) (*model.Shipment, error)
}
