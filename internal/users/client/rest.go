package client

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/users"
	"github.com/lucasbarrena/shopsphere-gateway/internal/users/dto"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) users.Client {
	return &restClient{http: http}
}

func (c *restClient) Me(ctx context.Context) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.http.Get(ctx, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) UpdateMe(ctx context.Context, input *dto.UpdateProfileInput) (*model.UserProfile, error) {
	var out model.UserProfile
	if err := c.http.Put(ctx, "/me", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
