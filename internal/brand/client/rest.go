package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/brand"
	"github.com/lucasbarrena/shopsphere-gateway/internal/brand/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) brand.Client {
	return &restClient{http: http}
}

func (c *restClient) Active(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	if err := c.http.Get(ctx, "/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) FindAll(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	if err := c.http.Get(ctx, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) FindByID(ctx context.Context, id int64) (*model.Brand, error) {
	var out model.Brand
	if err := c.http.Get(ctx, fmt.Sprintf("/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Create(ctx context.Context, input *dto.BrandInput) (*model.Brand, error) {
	var out model.Brand
	if err := c.http.Post(ctx, "", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Update(ctx context.Context, id int64, input *dto.BrandInput) (*model.Brand, error) {
	var out model.Brand
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
