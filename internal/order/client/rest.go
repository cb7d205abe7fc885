package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/order"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) order.Client {
	return &restClient{http: http}
}

func (c *restClient) FindMine(ctx context.Context, params listquery.Params) (*model.Page[model.Order], error) {
	var out model.Page[model.Order]
	if err := c.http.Get(ctx, "/mine", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.Order], error) {
	var out model.Page[model.Order]
	if err := c.http.Get(ctx, "", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	var out model.Order
	if err := c.http.Get(ctx, fmt.Sprintf("/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	body := map[string]model.OrderStatus{"status": status}
	var out model.Order
	if err := c.http.Put(ctx, fmt.Sprintf("/%d/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
