package users

import (
	"context"

	"github.com/lucasbarrena/shopsphere-gateway/internal/model"
	"github.com/lucasbarrena/shopsphere-gateway/internal/users/dto"
)

type Client interface {
	Me(ctx context.Context) (*model.UserProfile, error)
	UpdateMe(ctx context.Context, input *dto.UpdateProfileInput) (*model.UserProfile, error)
}
