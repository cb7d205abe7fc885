package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/category"
	"github.com/lucasbarrena/shopsphere-gateway/internal/category/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type categoryUseCase struct {
	client category.Client
	logger *zap.Logger
}

func NewCategoryUseCase(client category.Client, log *zap.Logger) category.UseCase {
	return &categoryUseCase{client: client, logger: log}
}

func (uc *categoryUseCase) ActiveCategories(ctx context.Context) ([]model.Category, error) {
	return uc.client.Active(ctx)
}

func (uc *categoryUseCase) AllCategories(ctx context.Context) ([]model.Category, error) {
	return uc.client.FindAll(ctx)
}

func (uc *categoryUseCase) CategoriesByBrand(ctx context.Context, brandID int64) ([]model.Category, error) {
	return uc.client.FindByBrand(ctx, brandID)
}

// checkBrandMatch enforces the form invariant: the category's brand must
// be the brand currently selected in the admin screen.
func checkBrandMatch(input *dto.CategoryInput) error {
	if input.BrandID != input.SelectedBrandID {
		return &httpx.APIError{
			Status:  400,
			Code:    "BRAND_MISMATCH",
			Message: "category brand does not match the selected brand",
		}
	}
	return nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error) {
	if err := checkBrandMatch(input); err != nil {
		return nil, err
	}
	return uc.client.Create(ctx, input)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int64, input *dto.CategoryInput) (*model.Category, error) {
	if err := checkBrandMatch(input); err != nil {
		return nil, err
	}
	return uc.client.Update(ctx, id, input)
}

func (uc *categoryUseCase) DeactivateCategory(ctx context.Context, id int64) error {
	return uc.client.Deactivate(ctx, id)
}

func (uc *categoryUseCase) ReactivateCategory(ctx context.Context, id int64) error {
	return uc.client.Reactivate(ctx, id)
}
