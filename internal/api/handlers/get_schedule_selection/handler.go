package get_schedule_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	scheduleService "github.com/m04kA/SMC-StorefrontService/internal/service/schedule"
)

const (
	msgSessionNotFound = "сессия не найдена"
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

// Handle GET /api/v1/session/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	result, err := h.service.GetSelection(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrSessionNotFound):
			h.logger.Warn("GET /session/schedule - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /session/schedule - Failed to get selection: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /session/schedule - Selection retrieved successfully: session_id=%s, state=%s",
		sessionID, result.State)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
