package clear_cart

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-StorefrontService/internal/service/cart"
)

const (
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	service CartService
	logger  Logger
}

func NewHandler(service CartService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/session/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	_, err := h.service.ClearCart(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrSessionNotFound):
			h.logger.Warn("DELETE /session/cart - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /session/cart - Failed to clear cart: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /session/cart - Cart cleared successfully: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
