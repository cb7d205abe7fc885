package client

import (
	"context"
	"fmt"

	"github.com/lucasbarrena/shopsphere-gateway/internal/cart"
	"github.com/lucasbarrena/shopsphere-gateway/internal/cart/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) cart.Client {
	return &restClient{http: http}
}

func (c *restClient) Get(ctx context.Context) (*model.Cart, error) {
	var out model.Cart
	if err := c.http.Get(ctx, "/get", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.Cart, error) {
	var out model.Cart
	if err := c.http.Post(ctx, "/add", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) UpdateItem(ctx context.Context, productID int64, input *dto.UpdateItemInput) (*model.Cart, error) {
	var out model.Cart
	if err := c.http.Put(ctx, fmt.Sprintf("/item/%d", productID), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) RemoveItem(ctx context.Context, productID int64) (*model.Cart, error) {
	var out model.Cart
	if err := c.http.Delete(ctx, fmt.Sprintf("/item/%d", productID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Checkout(ctx context.Context) (*model.Checkout, error) {
	var out model.Checkout
	if err := c.http.Get(ctx, "/checkout", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) SetShipping(ctx context.Context, input *dto.SetShippingInput) (*model.Checkout, error) {
	var out model.Checkout
	if err := c.http.Put(ctx, "/shipping", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
