package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/todosync/pkg/api"
)

// writeError отвечает JSON в формате api.ErrorResponse, как и handlers
func writeError(w http.ResponseWriter, code, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
