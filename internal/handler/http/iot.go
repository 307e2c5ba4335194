package http

import (
	"encoding/json"
	"net/http"

	"github.com/HuginnARaven/WorkerOnline-server/internal/domain/iot"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/middleware"
	"github.com/HuginnARaven/WorkerOnline-server/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type IoTHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	// Device endpoints, no user session.
	Heartbeat(w http.ResponseWriter, r *http.Request)
	OutOfPlace(w http.ResponseWriter, r *http.Request)
}

type IoTHandlerImpl struct {
	supervisorService iot.SupervisorService
}

func NewIoTHandler(supervisorService iot.SupervisorService) IoTHandler {
	return &IoTHandlerImpl{supervisorService: supervisorService}
}

// Register implements IoTHandler.
func (h *IoTHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req iot.RegisterSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.supervisorService.Register(r.Context(), identity.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Supervisor registered", resp)
}

// Get implements IoTHandler.
func (h *IoTHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.supervisorService.Get(r.Context(), identity.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements IoTHandler.
func (h *IoTHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	resp, err := h.supervisorService.List(r.Context(), identity.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Delete implements IoTHandler.
func (h *IoTHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.supervisorService.Delete(r.Context(), identity.CompanyID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Supervisor deleted", nil)
}

// Heartbeat implements IoTHandler.
func (h *IoTHandlerImpl) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var req iot.HeartbeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.supervisorService.Heartbeat(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// OutOfPlace implements IoTHandler.
func (h *IoTHandlerImpl) OutOfPlace(w http.ResponseWriter, r *http.Request) {
	var req iot.OutOfPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.supervisorService.ReportOutOfPlace(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Report recorded", nil)
}
