package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/shipment"
	"github.com/lucasbarrena/shopsphere-gateway/internal/shipment/dto"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) shipment.Client {
	return &restClient{http: http}
}

func (c *restClient) Create(ctx context.Context, input *dto.CreateShipmentInput) (*model.Shipment, error) {
	var out model.Shipment
	if err := c.http.Post(ctx, "/create", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) UpdateStatus(ctx context.Context, id int64, input *dto.UpdateStatusInput) (*model.Shipment, error) {
	var out model.Shipment
	if err := c.http.Put(ctx, fmt.Sprintf("/%d/status", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) FindByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	var out model.Shipment
	if err := c.http.Get(ctx, fmt.Sprintf("/order/%d", orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Track(ctx context.Context, code string) (*model.Shipment, error) {
	var out model.Shipment
	if err := c.http.Get(ctx, "/track/"+url.PathEscape(code), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
