package controllers

import (
	"net/http"

	"conferenceassistant/internal/delivery/http/helpers"
)

// HealthStatus is the payload of GET /healthz.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthSuccessResponse is the success response envelope for GET /healthz (200).
type HealthSuccessResponse struct {
	Data  HealthStatus      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthSuccessResponse "data.status is ok"
// @Router /healthz [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok"})
}

// NotFound answers every unrouted path with a 404 envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "route not found")
}
