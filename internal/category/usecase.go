package category

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/category/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type UseCase interface {
	ActiveCategories(ctx context.Context) ([]model.Category, error)
	AllCategories(ctx context.Context) ([]model.Category, error)
	CategoriesByBrand(ctx context.Context, brandID int64) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, input *dto.CategoryInput) (*model.Category, error)
	DeactivateCategory(ctx context.Context, id int64) error
	ReactivateCategory(ctx context.Context, id int64) error
}
