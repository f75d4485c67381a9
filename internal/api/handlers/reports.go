package handlers

import (
	"net/http"
	"strconv"

	"github.com/arjun/cybercafe-backend/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) DailyUsage(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid days", http.StatusBadRequest)
			return
		}
		days = parsed
	}

	usage, err := h.reportService.DailyUsage(r.Context(), days)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, usage)
}

func (h *ReportHandler) UsagePerComputer(w http.ResponseWriter, r *http.Request) {
	usage, err := h.reportService.UsagePerComputer(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, usage)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, metrics)
}
