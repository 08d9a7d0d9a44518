package server

import (
	"net/http"

	"github.com/sevenam/diamondstore/internal/store"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Settings())
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch store.SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := s.store.UpdateSystemSettings(r.Context(), patch)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

func (s *Server) handleListActivityLogs(w http.ResponseWriter, r *http.Request) {
	logs := s.store.ActivityLogs()

	logType := store.LogType(r.URL.Query().Get("type"))
	if logType == "" {
		respondJSON(w, http.StatusOK, logs)
		return
	}

	filtered := make([]store.ActivityLog, 0, len(logs))
	for _, l := range logs {
		if l.Type == logType {
			filtered = append(filtered, l)
		}
	}
	respondJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleCreateActivityLog(w http.ResponseWriter, r *http.Request) {
	var in store.NewActivityLog
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := s.store.AddActivityLog(r.Context(), in)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.GetStats())
}
