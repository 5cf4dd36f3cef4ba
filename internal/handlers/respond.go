package handlers

import (
	"encoding/json"
	"net/http"

	"gitdash/internal/apierror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, err)
}
