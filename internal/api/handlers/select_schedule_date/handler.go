package select_schedule_date

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
	msgMissingDate      = "дата обязательна"
	msgSessionNotFound  = "сессия не найдена"
	msgDateNotOfferable = "дата недоступна для выбора"
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

// Handle PUT /api/v1/session/schedule/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/schedule/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.Date == "" {
		h.logger.Warn("PUT /session/schedule/date - Missing date: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.SelectDate(r.Context(), &models.SelectDateRequest{
		SessionID: sessionID,
		DateISO:   req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSessionNotFound):
			h.logger.Warn("PUT /session/schedule/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, scheduleService.ErrDateNotOfferable):
			h.logger.Warn("PUT /session/schedule/date - Date not offerable: session_id=%s, date=%s",
				sessionID, req.Date)
			handlers.RespondConflict(w, msgDateNotOfferable)

		default:
			h.logger.Error("PUT /session/schedule/date - Failed to select date: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /session/schedule/date - Date selected successfully: session_id=%s, date=%s",
		sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
