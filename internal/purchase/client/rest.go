package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/purchase"
	"github.com/lucasbarrena/shopsphere-gateway/internal/purchase/dto"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) purchase.Client {
	return &restClient{http: http}
}

func (c *restClient) Create(ctx context.Context, input *dto.CreatePurchaseOrderInput) (*model.PurchaseOrder, error) {
	var out model.PurchaseOrder
	if err := c.http.Post(ctx, "", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindAll(ctx context.Context, params listquery.Params) (*model.Page[model.PurchaseOrder], error) {
	var out model.Page[model.PurchaseOrder]
	if err := c.http.Get(ctx, "", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	var out model.PurchaseOrder
	if err := c.http.Get(ctx, fmt.Sprintf("/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Simulate(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	var out model.PurchaseOrder
	if err := c.http.Post(ctx, fmt.Sprintf("/%d/simulate", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Confirm(ctx context.Context, id int64, input *dto.ConfirmPurchaseOrderInput) (*model.PurchaseOrder, error) {
	var out model.PurchaseOrder
	if err := c.http.Post(ctx, fmt.Sprintf("/%d/confirm", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
