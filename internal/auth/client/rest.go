package client

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/auth"
	"github.com/lucasbarrena/shopsphere-gateway/internal/auth/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
)

type restClient struct {
	http *httpx.Client
}

func NewRESTClient(http *httpx.Client) auth.Client {
	return &restClient{http: http}
}

func (c *restClient) Login(ctx context.Context, input *dto.LoginInput) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.http.Post(ctx, "/login", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) Register(ctx context.Context, input *dto.RegisterInput) (*dto.TokenResponse, error) {
	var out dto.TokenResponse
	if err := c.http.Post(ctx, "/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *restClient) VerifyEmail(ctx context.Context, input *dto.VerifyEmailInput) error {
	return c.http.Post(ctx, "/verify-email", input, nil)
}

func (c *restClient) ForgotPassword(ctx context.Context, input *dto.ForgotPasswordInput) error {
	return c.http.Post(ctx, "/forgot-password", input, nil)
}

func (c *restClient) ResetPassword(ctx context.Context, input *dto.ResetPasswordInput) error {
	return c.http.Post(ctx, "/reset-password", input, nil)
}
