package leavehandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/employee"
	"ems/internal/domain/leave"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Leaves *leave.Service
}

func NewHandler(leaves *leave.Service) *Handler {
	return &Handler{Leaves: leaves}
}

type requestPayload struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

type decisionPayload struct {
	Decision string `json:"decision"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleRequest)
		r.Put("/{leaveID}/decision", h.handleDecide)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Leaves.List(r.Context())
	if err != nil {
		failLeave(w, r, err)
		return
	}
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	start, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid startDate", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid endDate", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Leaves.Request(r.Context(), payload.EmployeeID, payload.LeaveType, start, end, payload.Reason)
	if err != nil {
		failLeave(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	var payload decisionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	decided, err := h.Leaves.Decide(r.Context(), chi.URLParam(r, "leaveID"), payload.Decision,
		middleware.GetActorID(r.Context()))
	if err != nil {
		failLeave(w, r, err)
		return
	}
	api.Success(w, decided, middleware.GetRequestID(r.Context()))
}

func failLeave(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, leave.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "leave request not found", requestID)
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, leave.ErrAlreadyDecided):
		api.Fail(w, http.StatusConflict, "already_decided", "leave request already decided", requestID)
	case errors.Is(err, leave.ErrInvalidInput),
		errors.Is(err, leave.ErrInvalidRange),
		errors.Is(err, leave.ErrInvalidDecision):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
	}
}
