package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/category/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type fakeCategoryClient struct {
	created *dto.CategoryInput
}

func (f *fakeCategoryClient) Active(ctx context.Context) ([]model.Category, error)  { return nil, nil }
func (f *fakeCategoryClient) FindAll(ctx context.Context) ([]model.Category, error) { return nil, nil }
func (f *fakeCategoryClient) FindByBrand(ctx context.Context, brandID int64) ([]model.Category, error) {
	return nil, nil
}
func (f *fakeCategoryClient) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	return &model.Category{}, nil
}
func (f *fakeCategoryClient) Create(ctx context.Context, input *dto.CategoryInput) (*model.Category, error) {
	f.created = input
	return &model.Category{ID: 1, Name: input.Name, BrandID: input.BrandID}, nil
}
func (f *fakeCategoryClient) Update(ctx context.Context, id int64, input *dto.CategoryInput) (*model.Category, error) {
	return &model.Category{ID: id, Name: input.Name, BrandID: input.BrandID}, nil
}
func (f *fakeCategoryClient) Deactivate(ctx context.Context, id int64) error { return nil }
func (f *fakeCategoryClient) Reactivate(ctx context.Context, id int64) error { return nil }

func TestCreateCategoryBrandMismatchRejectedLocally(t *testing.T) {
	client := &fakeCategoryClient{}
	uc := NewCategoryUseCase(client, zap.NewNop())

	_, err := uc.CreateCategory(context.Background(), &dto.CategoryInput{
		Name: "Mechanical", BrandID: 3, SelectedBrandID: 5,
	})
	require.Error(t, err)

	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "BRAND_MISMATCH", apiErr.Code)
	assert.Nil(t, client.created, "backend must not be called on mismatch")
}

func TestCreateCategoryMatchingBrandPassesThrough(t *testing.T) {
	client := &fakeCategoryClient{}
	uc := NewCategoryUseCase(client, zap.NewNop())

	cat, err := uc.CreateCategory(context.Background(), &dto.CategoryInput{
		Name: "Mechanical", BrandID: 5, SelectedBrandID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), cat.BrandID)
	require.NotNil(t, client.created)
}

func TestUpdateCategoryBrandMismatchRejected(t *testing.T) {
	uc := NewCategoryUseCase(&fakeCategoryClient{}, zap.NewNop())

	_, err := uc.UpdateCategory(context.Background(), 9, &dto.CategoryInput{
		Name: "Mechanical", BrandID: 1, SelectedBrandID: 2,
	})
	var apiErr *httpx.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
}
