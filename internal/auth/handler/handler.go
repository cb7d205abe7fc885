package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lucasbarrena/shopsphere-gateway/internal/api"
	"github.com/lucasbarrena/shopsphere-gateway/internal/auth"
	"github.com/lucasbarrena/shopsphere-gateway/internal/auth/dto"
	"github.com/lucasbarrena/shopsphere-gateway/internal/middleware"
	"github.com/lucasbarrena/shopsphere-gateway/internal/session"
)

type AuthHandler struct {
	client auth.Client
	logger *zap.Logger
}

func NewAuthHandler(client auth.Client, log *zap.Logger) *AuthHandler {
	return &AuthHandler{client: client, logger: log}
}

type sessionResponse struct {
	Token   string          `json:"token,omitempty"`
	Session session.Session `json:"session"`
}

// Login proxies the credentials and re-derives session state from the
// newly issued token, never from a separate profile fetch.
func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "email and password are required")
		return
	}

	res, err := h.client.Login(c.Request.Context(), &input)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", input.Email), zap.Error(err))
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{
		Token:   res.Token,
		Session: session.FromToken(res.Token, time.Now()),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "invalid registration payload")
		return
	}

	res, err := h.client.Register(c.Request.Context(), &input)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{
		Token:   res.Token,
		Session: session.FromToken(res.Token, time.Now()),
	})
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var input dto.VerifyEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "verification token is required")
		return
	}
	if err := h.client.VerifyEmail(c.Request.Context(), &input); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input dto.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "email is required")
		return
	}
	if err := h.client.ForgotPassword(c.Request.Context(), &input); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		api.BadRequest(c, "token and new password are required")
		return
	}
	if err := h.client.ResetPassword(c.Request.Context(), &input); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Session exposes the state derived from the presented token so the
// browser can restore its auth context on mount.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session": middleware.SessionFrom(c)})
}
