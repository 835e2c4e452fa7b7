package http

import (
	"log/slog"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/dashboard"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetMetrics(w http.ResponseWriter, r *http.Request)
	GetDailyBreakdown(w http.ResponseWriter, r *http.Request)
	GetWeeklyBreakdown(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMetrics implements DashboardHandler.
func (h *DashboardHandlerImpl) GetMetrics(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		slog.Error("GetMetrics validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	metrics, err := h.dashboardService.GetWorkMetrics(r.Context(), filter)
	if err != nil {
		slog.Error("GetMetrics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, metrics)
}

// GetDailyBreakdown implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDailyBreakdown(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.RangeFilter{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		slog.Error("GetDailyBreakdown validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	daily, err := h.dashboardService.GetDailyBreakdown(r.Context(), filter)
	if err != nil {
		slog.Error("GetDailyBreakdown service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily)
}

// GetWeeklyBreakdown implements DashboardHandler.
func (h *DashboardHandlerImpl) GetWeeklyBreakdown(w http.ResponseWriter, r *http.Request) {
	filter := dashboard.MonthFilter{
		Month: r.URL.Query().Get("month"),
	}

	if err := filter.Validate(); err != nil {
		slog.Error("GetWeeklyBreakdown validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	weekly, err := h.dashboardService.GetWeeklyBreakdown(r.Context(), filter)
	if err != nil {
		slog.Error("GetWeeklyBreakdown service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, weekly)
}
