package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Sessions string `json:"sessions"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "ok", Sessions: "ok"}
	status := http.StatusOK

	if err := h.DB.HealthCheck(); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if err := h.Redis.Ping(r.Context()).Err(); err != nil {
		resp.Status = "degraded"
		resp.Sessions = "unreachable"
		status = http.StatusServiceUnavailable
	}

	WriteJSON(w, resp, status)
}
