package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// OK writes the standard {ok:true} mutation response
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, AckResponse{OK: true})
}
