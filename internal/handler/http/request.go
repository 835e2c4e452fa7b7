package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/request"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CorrectionRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Materialize(w http.ResponseWriter, r *http.Request)
}

type CorrectionRequestHandlerImpl struct {
	requestService request.CorrectionRequestService
}

func NewCorrectionRequestHandler(requestService request.CorrectionRequestService) CorrectionRequestHandler {
	return &CorrectionRequestHandlerImpl{requestService: requestService}
}

// Create implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq request.CreateRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.requestService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Correction request created", "id", created.ID)
	response.Created(w, "Correction request created", created)
}

// ListMy implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListMy(r.Context())
	if err != nil {
		slog.Error("ListMy requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Update implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq request.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.requestService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Update request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request updated", updated)
}

// Delete implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.requestService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Correction request deleted", nil)
}

// BulkDelete implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var bulkReq request.BulkDeleteRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("BulkDelete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		slog.Error("BulkDelete validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.requestService.BulkDelete(r.Context(), bulkReq); err != nil {
		slog.Error("BulkDelete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Correction requests deleted", "count", len(bulkReq.IDs))
	response.SuccessWithMessage(w, "Correction requests deleted", nil)
}

// List implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	requests, err := h.requestService.List(r.Context(), status)
	if err != nil {
		slog.Error("List requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Approve implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var reviewReq request.ReviewRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
			slog.Error("Approve decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	approved, err := h.requestService.Approve(r.Context(), id, reviewReq)
	if err != nil {
		slog.Error("Approve service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Correction request approved", "id", id)
	response.SuccessWithMessage(w, "Correction request approved", approved)
}

// Reject implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var reviewReq request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Reject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := reviewReq.ValidateForRejection(); err != nil {
		slog.Error("Reject validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	rejected, err := h.requestService.Reject(r.Context(), id, reviewReq)
	if err != nil {
		slog.Error("Reject service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Correction request rejected", "id", id)
	response.SuccessWithMessage(w, "Correction request rejected", rejected)
}

// Materialize implements CorrectionRequestHandler.
func (h *CorrectionRequestHandlerImpl) Materialize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.requestService.Materialize(r.Context(), id); err != nil {
		slog.Error("Materialize service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Correction request materialized", "id", id)
	response.SuccessWithMessage(w, "Clock event created from correction request", nil)
}
