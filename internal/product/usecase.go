package product

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product/dto"
)

type UseCase interface {
	StorefrontProducts(ctx context.Context) ([]model.Product, error)
	ProductDetail(ctx context.Context, id int64) (*model.Product, error)

	// AdminList issues one paginated fetch per filter/page change; a newer
	// call from the same viewer cancels the in-flight one.
	AdminList(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Product], error)

	// Suggest collapses rapid search input from the same viewer into a
	// single upstream request reflecting only the final term.
	Suggest(ctx context.Context, viewer, term string) ([]model.Product, error)

	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error)
	DeactivateProduct(ctx context.Context, id int64) error
	ReactivateProduct(ctx context.Context, id int64) error
}
