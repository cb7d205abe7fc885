package category

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/category/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type Client interface {
	Active(ctx context.Context) ([]model.Category, error)
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByBrand(ctx context.Context, brandID int64) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, input *dto.CategoryInput) (*model.Category, error)
	Update(ctx context.Context, id int64, input *dto.CategoryInput) (*model.Category, error)
	Deactivate(ctx context.Context, id int64) error
	Reactivate(ctx context.Context, id int64) error
}
