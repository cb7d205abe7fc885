package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product"
	"github.com/lucasbarrena/shopsphere-gateway/internal/product/dto"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) product.Client {
	return &restClient{http: http}
}

func (c *restClient) Active(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.http.Get(ctx, "/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var out model.Product
	if err := c.http.Get(ctx, fmt.Sprintf("/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.Product], error) {
	var out model.Page[model.Product]
	if err := c.http.Get(ctx, "", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Create(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	var out model.Product
	if err := c.http.Post(ctx, "", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Update(ctx context.Context, id int64, input *dto.UpdateProductInput) (*model.Product, error) {
	var out model.Product
	if err := c.http.Put(ctx, fmt.Sprintf("/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Deactivate(ctx context.Context, id int64) error {
	return c.http.Put(ctx, fmt.Sprintf("/%d/deactivate", id), nil, nil)
}

func (c *restClient) Reactivate(ctx context.Context, id int64) error {
	return c.http.Put(ctx, fmt.Sprintf("/%d/reactivate", id), nil, nil)
}
