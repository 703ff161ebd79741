package meetinghandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/meeting"
	"ems/internal/transport/http/api"
	"ems/internal/transport/http/middleware"
	"ems/internal/transport/http/shared"
)

type Handler struct {
	Meetings *meeting.Service
}

func NewHandler(meetings *meeting.Service) *Handler {
	return &Handler{Meetings: meetings}
}

type schedulePayload struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ScheduledAt  string   `json:"scheduledAt"`
	Participants []string `json:"participants"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/meetings", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleSchedule)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	meetings, err := h.Meetings.List(r.Context())
	if err != nil {
		failMeeting(w, r, err)
		return
	}
	if meetings == nil {
		meetings = []meeting.Meeting{}
	}
	api.Success(w, meetings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var payload schedulePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	scheduledAt, err := shared.ParseDate(payload.ScheduledAt)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", "invalid scheduledAt", middleware.GetRequestID(r.Context()))
		return
	}
	created, err := h.Meetings.Schedule(r.Context(), payload.Title, payload.Description, scheduledAt,
		payload.Participants, middleware.GetActorID(r.Context()))
	if err != nil {
		failMeeting(w, r, err)
		return
	}
	api.Created(w, created, middleware.GetRequestID(r.Context()))
}

func failMeeting(w http.ResponseWriter, r *http.Request, err error) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, meeting.ErrInvalidInput):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, "internal_error", "something went wrong", requestID)
	}
}
