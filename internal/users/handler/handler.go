package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/users"
	"github.com/lucasbarrena/shopsphere-gateway/internal/users/dto"
)

type UserHandler struct {
	client users.Client
}

func NewUserHandler(client users.Client) *UserHandler {
	return &UserHandler{client: client}
}

func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.client.Me(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "firstName and lastName are required")
		return
	}
	profile, err := h.client.UpdateMe(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
