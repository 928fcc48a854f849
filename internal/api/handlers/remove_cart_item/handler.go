package remove_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-StorefrontService/internal/service/cart"
)

const (
	msgMissingItemID   = "идентификатор позиции обязателен"
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

// Handle DELETE /api/v1/session/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		h.logger.Warn("DELETE /session/cart/items - Missing itemId: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	result, err := h.service.RemoveItem(r.Context(), sessionID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrSessionNotFound):
			h.logger.Warn("DELETE /session/cart/items - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("DELETE /session/cart/items - Failed to remove item: session_id=%s, item_id=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /session/cart/items - Item removed successfully: session_id=%s, item_id=%s",
		sessionID, itemID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
