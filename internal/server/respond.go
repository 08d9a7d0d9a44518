package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sevenam/diamondstore/internal/checkout"
	"github.com/sevenam/diamondstore/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps container and checkout errors onto status codes.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, checkout.ErrMaintenance):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	case checkout.IsRejection(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrPersist):
		respondError(w, http.StatusInternalServerError, "Change applied but could not be saved: "+err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
