package auth

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/auth/dto"
)

// Client is the auth backend's boundary. Every operation consumes or
// returns a bearer JWT; the gateway never verifies it locally.
type Client interface {
	Login(ctx context.Context, input *dto.LoginInput) (*dto.TokenResponse, error)
	Register(ctx context.Context, input *dto.RegisterInput) (*dto.TokenResponse, error)
	VerifyEmail(ctx context.Context, input *dto.VerifyEmailInput) error
	ForgotPassword(ctx context.Context, input *dto.ForgotPasswordInput) error
	ResetPassword(ctx context.Context, input *dto.ResetPasswordInput) error
}
