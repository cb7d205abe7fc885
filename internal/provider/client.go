package provider

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/provider/dto"
)

type Client interface {
	FindAll(ctx context.Context) ([]model.Provider, error)
	FindByID(ctx context.Context, id int64) (*model.Provider, error)
	Create(ctx context.Context, input *dto.ProviderInput) (*model.Provider, error)
	Update(ctx context.Context, id int64, input *dto.ProviderInput) (*model.Provider, error)
	Deactivate(ctx context.Context, id int64) error
}
