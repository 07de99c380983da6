package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"conferenceassistant/internal/delivery/http/helpers"
	"conferenceassistant/internal/domain"
)

type ExportController struct {
	Logger  *slog.Logger
	Service domain.SubmissionService
}

func NewExportController(logger *slog.Logger, svc domain.SubmissionService) *ExportController {
	return &ExportController{
		Logger:  logger,
		Service: svc,
	}
}

// ListAll godoc
// @Summary Export all talk submissions as CSV
// @Description Returns every stored submission as a CSV attachment. Requires the export secret in the secret query parameter, or an export token minted by export-token as a Bearer credential.
// @Tags submissions
// @Produce text/csv
// @Produce plain
// @Security BearerAuth
// @Param secret query string false "Export secret"
// @Success 200 {string} string "CSV with one row per submission"
// @Failure 401 {string} string "Unauthorized: Invalid or missing secret key"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /listall [get]
func (c *ExportController) ListAll(w http.ResponseWriter, r *http.Request) {
	subs, err := c.Service.List(r.Context(), "")
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list submissions")
		return
	}
	c.Logger.InfoContext(r.Context(), "submissions exported", "count", len(subs))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="submissions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, SubmissionsCSV(subs))
}
