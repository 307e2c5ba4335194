package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/appointment"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/middleware"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Recommendations(w http.ResponseWriter, r *http.Request)

	ListMine(w http.ResponseWriter, r *http.Request)
	MarkDone(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type AppointmentHandlerImpl struct {
	appointmentService appointment.AppointmentService
}

func NewAppointmentHandler(appointmentService appointment.AppointmentService) AppointmentHandler {
	return &AppointmentHandlerImpl{appointmentService: appointmentService}
}

func isDoneFromQuery(r *http.Request) *bool {
	raw := r.URL.Query().Get("is_done")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// Create implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req appointment.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.appointmentService.Create(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Appointment created", resp)
}

// Get implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.appointmentService.Get(r.Context(), identity.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements AppointmentHandler.
func (h *AppointmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.appointmentService.List(r.Context(), identity.CompanyID, isDoneFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Recommendations implements AppointmentHandler.
func (h *AppointmentHandlerImpl) Recommendations(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.appointmentService.Recommendations(r.Context(), identity.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListMine implements AppointmentHandler.
func (h *AppointmentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.appointmentService.ListMine(r.Context(), identity.WorkerID, isDoneFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// MarkDone implements AppointmentHandler.
func (h *AppointmentHandlerImpl) MarkDone(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.appointmentService.MarkDone(r.Context(), identity.WorkerID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateStatus implements AppointmentHandler.
func (h *AppointmentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req appointment.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.appointmentService.UpdateStatus(r.Context(), identity.WorkerID, chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
