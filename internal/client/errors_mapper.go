package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/apperr"
	"github.com/MKhiriev/go-pass-vault/models"
)

// mapAPIError converts a non-2xx response back into the domain error it was
// serialized from. Responses that do not carry the uniform error shape fall
// back to a plain error with the raw body.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var apiErr models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.ErrorCode != "" {
		return &apperr.Error{
			StatusCode: apiErr.StatusCode,
			ErrorCode:  apperr.Code(apiErr.ErrorCode),
			Message:    apiErr.Message,
		}
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
