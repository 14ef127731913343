package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"error,omitempty"`
}

type DataResponse struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Success: false,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteDataResponse wraps body in the {success, data} envelope the mobile
// client expects.
func WriteDataResponse(w http.ResponseWriter, statusCode int, body any) {
	WriteJSONResponse(w, statusCode, DataResponse{
		Success: true,
		Data:    body,
	})
}

// WriteListResponse is WriteDataResponse plus an explicit element count.
func WriteListResponse(w http.ResponseWriter, statusCode int, count int, body any) {
	WriteJSONResponse(w, statusCode, DataResponse{
		Success: true,
		Count:   &count,
		Data:    body,
	})
}
