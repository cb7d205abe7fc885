package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/fetch"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product/dto"
)

const suggestionPageSize = 8

type productUseCase struct {
	client   product.Client
	debounce *fetch.Debouncer[[]model.Product]
	latest   *fetch.Latest
	logger   *zap.Logger
}

func NewProductUseCase(client product.Client, debounceDelay time.Duration, log *zap.Logger) product.UseCase {
	return &productUseCase{
		client:   client,
		debounce: fetch.NewDebouncer[[]model.Product](debounceDelay),
		latest:   fetch.NewLatest(),
		logger:   log,
	}
}

func (uc *productUseCase) StorefrontProducts(ctx context.Context) ([]model.Product, error) {
	return uc.client.Active(ctx)
}

func (uc *productUseCase) ProductDetail(ctx context.Context, id int64) (*model.Product, error) {
	return uc.client.FindByID(ctx, id)
}

func (uc *productUseCase) AdminList(ctx context.Context, viewer string, params listquery.Params) (*model.Page[model.Product], error) {
	// Newer list requests from the same viewer supersede this one, so a
	// slow stale page can never overwrite a fresher result.
	lctx, release := uc.latest.Bind(ctx, "admin-products:"+viewer)
	defer release()

	return uc.client.FindAll(lctx, params)
}

func (uc *productUseCase) Suggest(ctx context.Context, viewer, term string) ([]model.Product, error) {
	return uc.debounce.Do(ctx, "suggest:"+viewer, term, func(ctx context.Context, finalTerm string) ([]model.Product, error) {
		page, err := uc.client.FindAll(ctx, listquery.Params{Size: suggestionPageSize, Search: finalTerm})
		if err != nil {
			return nil, err
		}
		return page.Content, nil
	})
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	p, err := uc.client.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("product created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	return uc.client.Update(ctx, id, input)
}

func (uc *productUseCase) DeactivateProduct(ctx context.Context, id int64) error {
	return uc.client.Deactivate(ctx, id)
}

func (uc *productUseCase) ReactivateProduct(ctx context.Context, id int64) error {
	return uc.client.Reactivate(ctx, id)
}
