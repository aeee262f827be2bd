package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/ekimwerac/observable-clock-demo/internal/clocksvc"
)

func (s *HTTPServer) handleListActivations(w http.ResponseWriter, _ *http.Request) (int, error) {
	return writeJSON(w, http.StatusOK, s.service.Activations())
}

func (s *HTTPServer) handleStartActivation(w http.ResponseWriter, req *http.Request) (int, error) {
	name := req.URL.Query().Get("name")
	if name == "" {
		name = clocksvc.DefaultSourceName
	}
	info, err := s.service.StartActivation(name)
	if err != nil {
		return http.StatusBadRequest, fmt.Errorf("failed to start activation: %w", err)
	}
	return writeJSON(w, http.StatusCreated, info)
}

func (s *HTTPServer) handleStopActivation(w http.ResponseWriter, req *http.Request) (int, error) {
	id, err := uuid.Parse(req.PathValue("id"))
	if err != nil {
		return http.StatusBadRequest, fmt.Errorf("invalid activation id: %w", err)
	}
	if err := s.service.StopActivation(id); err != nil {
		return http.StatusNotFound, err
	}
	w.WriteHeader(http.StatusNoContent)
	return http.StatusNoContent, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, val any) (int, error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(val)
	return statusCode, nil
}
