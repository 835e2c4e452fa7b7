package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	RecordEvent(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	FinishBreak(w http.ResponseWriter, r *http.Request)
	ListEvents(w http.ResponseWriter, r *http.Request)
}

type ClockHandlerImpl struct {
	clockService clock.ClockService
}

func NewClockHandler(clockService clock.ClockService) ClockHandler {
	return &ClockHandlerImpl{clockService: clockService}
}

// Status implements ClockHandler.
func (h *ClockHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.clockService.Status(r.Context(), time.Now())
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}

// RecordEvent implements ClockHandler.
func (h *ClockHandlerImpl) RecordEvent(w http.ResponseWriter, r *http.Request) {
	var eventReq clock.RecordEventRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&eventReq); err != nil {
		slog.Error("RecordEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := eventReq.Validate(); err != nil {
		slog.Error("RecordEvent validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	event, err := h.clockService.RecordEvent(r.Context(), eventReq)
	if err != nil {
		slog.Error("RecordEvent service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Clock event recorded", "type", event.Type)
	response.Created(w, "Clock event recorded", event)
}

// ClockOut implements ClockHandler.
func (h *ClockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq clock.ClockOutRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := clockOutReq.Validate(); err != nil {
		slog.Error("ClockOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	events, err := h.clockService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User clocked out", "events", len(events))
	response.Created(w, "Clocked out", events)
}

// StartBreak implements ClockHandler.
func (h *ClockHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	event, err := h.clockService.StartBreak(r.Context())
	if err != nil {
		slog.Error("StartBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break started")
	response.Created(w, "Break started", event)
}

// FinishBreak implements ClockHandler.
func (h *ClockHandlerImpl) FinishBreak(w http.ResponseWriter, r *http.Request) {
	event, err := h.clockService.FinishBreak(r.Context())
	if err != nil {
		slog.Error("FinishBreak service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Break finished")
	response.Created(w, "Break finished", event)
}

// ListEvents implements ClockHandler.
func (h *ClockHandlerImpl) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := clock.ListEventsFilter{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	if err := filter.Validate(); err != nil {
		slog.Error("ListEvents validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	events, err := h.clockService.ListMyEvents(r.Context(), filter)
	if err != nil {
		slog.Error("ListEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}
