package brand

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/brand/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type Client interface {
	Active(ctx context.Context) ([]model.Brand, error)
	FindAll(ctx context.Context) ([]model.Brand, error)
	FindByID(ctx context.Context, id int64) (*model.Brand, error)
	Create(ctx context.Context, input *dto.BrandInput) (*model.Brand, error)
	Update(ctx context.Context, id int64, input *dto.BrandInput) (*model.Brand, error)
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) error
}
