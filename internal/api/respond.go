// Package api holds the response helpers shared by every handler package.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasbarrena/shopsphere-gateway/internal/httpx"
)

// Error translates a failure from the service layer into the HTTP response
// the browser expects. Backend rejections pass through with their original
// status and message; a 401 from any backend becomes the session-expired
// signal; anything else (network failure, timeout) is a bad gateway.
func Error(c *gin.Context, err error) {
	if errors.Is(err, httpx.ErrSessionExpired) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "session expired",
			"code":  "SESSION_EXPIRED",
		})
		return
	}

	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) {
		body := gin.H{"error": apiErr.Error()}
		if apiErr.Code != "" {
			body["code"] = apiErr.Code
		}
		if apiErr.Shortage != nil {
			body["productName"] = apiErr.Shortage.ProductName
			body["requested"] = apiErr.Shortage.Requested
			body["available"] = apiErr.Shortage.Available
		}
		c.JSON(apiErr.Status, body)
		return
	}

	if errors.Is(err, context.Canceled) {
		// a newer request for the same list superseded this one
		c.JSON(http.StatusConflict, gin.H{
			"error": "request superseded",
			"code":  "SUPERSEDED",
		})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}

// BadRequest is for validation failures raised before any backend call.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
