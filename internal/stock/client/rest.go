package client

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/listquery"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/stock"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) stock.Client {
	return &restClient{http: http}
}

func (c *restClient) Movements(ctx context.Context, params listquery.Params) (*model.Page[model.StockMovement], error) {
	var out model.Page[model.StockMovement]
	if err := c.http.Get(ctx, "/movements", params.Values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
