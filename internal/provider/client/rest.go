package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/provider"
	"github.com/lucasbarrena/shopsphere-gateway/internal/provider/dto"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) provider.Client {
	return &restClient{http: http}
}

func (c *restClient) FindAll(ctx context.Context) ([]model.Provider, error) {
	var out []model.Provider
	if err := c.http.Get(ctx, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *restClient) FindByID(ctx context.Context, id int64) (*model.Provider, error) {
	var out model.Provider
	if err := c.http.Get(ctx, fmt.Sprintf("/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Create(ctx context.Context, input *dto.ProviderInput) (*model.Provider, error) {
	var out model.Provider
	if err := c.http.Post(ctx, "", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Update(ctx context.Context, id int64, input *dto.ProviderInput) (*model.Provider, error) {
	var out model.Provider
	if err := c.http.Put(ctx, fmt.Sprintf("/%d", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Deactivate(ctx context.Context, id int64) error {
	return c.http.Put(ctx, fmt.Sprintf("/%d/deactivate", id), nil, nil)
}
