package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/employee"
	"ems/internal/domain/payroll"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
}

func NewHandler(p *payroll.Service) *Handler {
	return &Handler{Payroll: p}
}

type payPayload struct {
	EmployeeID  string  `json:"employeeId"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	BasicSalary float64 `json:"basicSalary"`
	Allowances  float64 `json:"allowances"`
	Deductions  float64 `json:"deductions"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Post("/pay", h.handlePay)
		r.Get("/status", h.handleStatus)
		r.Get("/history/{employeeID}", h.handleHistory)
		r.Get("/{employeeID}/{month}/{year}/slip", h.handleSlip)
	})
}

func (h *Handler) handlePay(w http.ResponseWriter, r *http.Request) {
	var payload payPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	record, err := h.Payroll.Issue(r.Context(), payroll.IssueRequest{
		EmployeeID:  payload.EmployeeID,
		Month:       payload.Month,
		Year:        payload.Year,
		BasicSalary: payload.BasicSalary,
		Allowances:  payload.Allowances,
		Deductions:  payload.Deductions,
		PaidBy:      middleware.GetActorID(r.Context()),
	})
	if err != nil {
		failPayroll(w, r, err)
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	month, year, ok := shared.MonthYear(r, time.Now())
	if !ok {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid month or year", middleware.GetRequestID(r.Context()))
		return
	}
	status, err := h.Payroll.StatusForPeriod(r.Context(), month, year)
	if err != nil {
		failPayroll(w, r, err)
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.Payroll.History(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		failPayroll(w, r, err)
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSlip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid month", middleware.GetRequestID(r.Context()))
		return
	}
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1900 || year > 9999 {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid year", middleware.GetRequestID(r.Context()))
		return
	}

	pdf, err := h.Payroll.Slip(r.Context(), employeeID, month, year)
	if err != nil {
		failPayroll(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=salary-slip-%d-%d.pdf", month, year))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func failPayroll(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, payroll.ErrRecordNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", requestID)
	case errors.Is(err, payroll.ErrDuplicateIssuance):
		api.Fail(w, http.StatusConflict, "duplicate_issuance", "payroll already issued for this period", requestID)
	case errors.Is(err, employee.ErrNotActive):
		api.Fail(w, http.StatusConflict, "employee_not_active", "employee is not active", requestID)
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidAmount),
		errors.Is(err, payroll.ErrNegativeAmount),
		errors.Is(err, employee.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	case errors.Is(err, payroll.ErrRenderTimeout):
		api.Fail(w, http.StatusServiceUnavailable, "render_timeout", "slip rendering timed out, please retry", requestID)
	case errors.Is(err, payroll.ErrRenderBusy):
		api.Fail(w, http.StatusServiceUnavailable, "render_busy", "slip renderer is busy, please retry", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
	}
}
