package handler

import (
	"context"
	"errors"
	"net/http"

	"fleetwatch/pkg/backend"
)

// ErrorHandler maps engine API errors onto their original HTTP status so the
// console proxies failures faithfully instead of flattening everything to a
// 400. It is registered once at startup via httpx.SetErrorHandlerCtx.
func ErrorHandler(_ context.Context, err error) (int, any) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		detail := apiErr.Detail
		if detail == "" {
			detail = http.StatusText(apiErr.Status)
		}
		return apiErr.Status, map[string]string{"detail": detail}
	}
	return http.StatusInternalServerError, map[string]string{"detail": err.Error()}
}
