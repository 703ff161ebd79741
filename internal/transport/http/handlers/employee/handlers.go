package employeehandler

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
	Employees  *employee.Service
	Attendance *attendance.Service
}

func NewHandler(employees *employee.Service, att *attendance.Service) *Handler {
	return &Handler{Employees: employees, Attendance: att}
}

type createPayload struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Designation  string  `json:"designation"`
	EmployeeType string  `json:"employeeType"`
	Salary       float64 `json:"salary"`
	WorkHours    float64 `json:"workHours"`
}

type salaryPayload struct {
	Salary float64 `json:"salary"`
}

type workHoursPayload struct {
	WorkHours float64 `json:"workHours"`
}

type promotePayload struct {
	Designation string `json:"designation"`
	Remarks     string `json:"remarks"`
}

type terminatePayload struct {
	Reason string `json:"reason"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}/salary", h.handleUpdateSalary)
		r.Put("/{employeeID}/work-hours", h.handleUpdateWorkHours)
		r.Post("/{employeeID}/promote", h.handlePromote)
		r.Post("/{employeeID}/terminate", h.handleTerminate)
		r.Get("/{employeeID}/attendance", h.handleAttendance)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Employees.List(r.Context())
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Employees.Create(r.Context(), employee.Employee{
		Name:         payload.Name,
		Email:        payload.Email,
		Designation:  payload.Designation,
		EmployeeType: payload.EmployeeType,
		Salary:       payload.Salary,
		WorkHours:    payload.WorkHours,
	})
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Employees.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	var payload salaryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Employees.UpdateSalary(r.Context(), chi.URLParam(r, "employeeID"), payload.Salary)
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateWorkHours(w http.ResponseWriter, r *http.Request) {
	var payload workHoursPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Employees.UpdateWorkHours(r.Context(), chi.URLParam(r, "employeeID"), payload.WorkHours)
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePromote(w http.ResponseWriter, r *http.Request) {
	var payload promotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	promotedBy := middleware.GetActorID(r.Context())
	emp, err := h.Employees.Promote(r.Context(), chi.URLParam(r, "employeeID"), payload.Designation, promotedBy, payload.Remarks)
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTerminate(w http.ResponseWriter, r *http.Request) {
	var payload terminatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Employees.Terminate(r.Context(), chi.URLParam(r, "employeeID"), payload.Reason)
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	month, year, ok := shared.MonthYear(r, time.Now())
	if !ok {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid month or year", middleware.GetRequestID(r.Context()))
		return
	}
	rows, err := h.Attendance.MonthlyAttendance(r.Context(), chi.URLParam(r, "employeeID"), month, year)
	if err != nil {
		failEmployee(w, r, err)
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func failEmployee(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employee.ErrEmailExists):
		api.Fail(w, http.StatusConflict, "duplicate_email", "an employee with this email already exists", requestID)
	case errors.Is(err, employee.ErrNotActive):
		api.Fail(w, http.StatusConflict, "employee_not_active", "employee is not active", requestID)
	case errors.Is(err, employee.ErrInvalidInput),
		errors.Is(err, employee.ErrInvalidSalary),
		errors.Is(err, employee.ErrInvalidHours):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
	}
}
