package apiutil

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse 統一的錯誤回應body: {message, error}
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SuccessJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(data)
}

func ErrorJSON(w http.ResponseWriter, status int, err error, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := ErrorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	json.NewEncoder(w).Encode(body)
}
