package attendancehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/attendance"
	"ems/internal/domain/employee"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Attendance *attendance.Service
}

func NewHandler(att *attendance.Service) *Handler {
	return &Handler{Attendance: att}
}

type clockPayload struct {
	EmployeeID string `json:"employeeId"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Post("/clock-in", h.handleClockIn)
		r.Post("/clock-out", h.handleClockOut)
		r.Get("/entries", h.handleEntries)
	})
	r.Get("/holidays", h.handleHolidays)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	month, year, ok := shared.MonthYear(r, time.Now())
	if !ok {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid month or year", middleware.GetRequestID(r.Context()))
		return
	}
	stats, err := h.Attendance.Stats(r.Context(), month, year)
	if err != nil {
		failAttendance(w, r, err)
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClockIn(w http.ResponseWriter, r *http.Request) {
	var payload clockPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}
	entry, err := h.Attendance.ClockIn(r.Context(), payload.EmployeeID)
	if err != nil {
		failAttendance(w, r, err)
		return
	}
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClockOut(w http.ResponseWriter, r *http.Request) {
	var payload clockPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EmployeeID == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "employeeId is required", middleware.GetRequestID(r.Context()))
		return
	}
	entry, err := h.Attendance.ClockOut(r.Context(), payload.EmployeeID)
	if err != nil {
		failAttendance(w, r, err)
		return
	}
	api.Success(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee")
	if employeeID == "" {
		api.Fail(w, http.StatusBadRequest, "validation_error", "employee query parameter is required", middleware.GetRequestID(r.Context()))
		return
	}
	month, year, ok := shared.MonthYear(r, time.Now())
	if !ok {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid month or year", middleware.GetRequestID(r.Context()))
		return
	}
	entries, err := h.Attendance.Entries(r.Context(), employeeID, month, year)
	if err != nil {
		failAttendance(w, r, err)
		return
	}
	if entries == nil {
		entries = []attendance.TimeEntry{}
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Attendance.Holidays(r.Context())
	if err != nil {
		failAttendance(w, r, err)
		return
	}
	if holidays == nil {
		holidays = []attendance.Holiday{}
	}
	api.Success(w, holidays, middleware.GetRequestID(r.Context()))
}

func failAttendance(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrNotActive):
		api.Fail(w, http.StatusConflict, "employee_not_active", "employee is not active", requestID)
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		api.Fail(w, http.StatusConflict, "already_clocked_in", "already clocked in today", requestID)
	case errors.Is(err, attendance.ErrNotClockedIn):
		api.Fail(w, http.StatusConflict, "not_clocked_in", "no clock-in found for today", requestID)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		api.Fail(w, http.StatusConflict, "already_clocked_out", "already clocked out today", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
	}
}
