package client

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/payment"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) payment.Client {
	return &restClient{http: http}
}

type preferenceRequest struct {
	IdempotencyKey string `json:"idempotencyKey"`
}

func (c *restClient) CreatePreference(ctx context.Context, idempotencyKey string) (*model.PaymentPreference, error) {
	var out model.PaymentPreference
	if err := c.http.Post(ctx, "/preference", preferenceRequest{IdempotencyKey: idempotencyKey}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
