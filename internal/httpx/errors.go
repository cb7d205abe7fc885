package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrSessionExpired is what every 401 from any backend collapses into.
// The HTTP layer turns it into the session-expired response the browser
// reacts to by dropping its token and returning to login.
var ErrSessionExpired = errors.New("session expired")

// CodeInsufficientStock is the structured code the stock-aware backends
// attach when a cart or order cannot be satisfied.
const CodeInsufficientStock = "INSUFFICIENT_STOCK"

// StockShortage carries the machine-readable fields of an
// insufficient-stock rejection, replacing the old free-text parsing.
type StockShortage struct {
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

// APIError is a backend rejection surfaced to the caller. Message comes
// from the backend's payload when present, otherwise a generic fallback.
type APIError struct {
	Status   int
	Code     string
	Message  string
	Shortage *StockShortage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap lets errors.Is treat any 401 as an expired session.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	return nil
}

// AsShortage extracts structured stock-shortage details if err carries them.
func AsShortage(err error) (*StockShortage, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Shortage != nil {
		return apiErr.Shortage, true
	}
	return nil, false
}

type errorPayload struct {
	Message     string `json:"message"`
	Error       string `json:"error"`
	Code        string `json:"code"`
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
}

func decodeError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}

	var payload errorPayload
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
		if payload.Code == CodeInsufficientStock {
			apiErr.Shortage = &StockShortage{
				ProductName: payload.ProductName,
				Requested:   payload.Requested,
				Available:   payload.Available,
			}
		}
	} else if s := strings.TrimSpace(string(raw)); s != "" && len(s) < 512 {
		apiErr.Message = s
	}

	return apiErr
}
