package select_schedule_time

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-StorefrontService/internal/service/schedule"
	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgMissingTime      = "время обязательно"
	msgSessionNotFound  = "сессия не найдена"
	msgNoDateSelected   = "сначала необходимо выбрать дату"
	msgSlotNotOfferable = "слот недоступен для выбора"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/session/schedule/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/schedule/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Time == "" {
		h.logger.Warn("PUT /session/schedule/time - Missing time: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	result, err := h.service.SelectTime(r.Context(), &models.SelectTimeRequest{
		SessionID: sessionID,
		Time:      req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSessionNotFound):
			h.logger.Warn("PUT /session/schedule/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, scheduleService.ErrNoDateSelected):
			h.logger.Warn("PUT /session/schedule/time - No date selected: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, scheduleService.ErrSlotNotOfferable):
			h.logger.Warn("PUT /session/schedule/time - Slot not offerable: session_id=%s, time=%s",
				sessionID, req.Time)
			handlers.RespondConflict(w, msgSlotNotOfferable)

		default:
			h.logger.Error("PUT /session/schedule/time - Failed to select time: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /session/schedule/time - Time selected successfully: session_id=%s, time=%s",
		sessionID, req.Time)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
