package update_cart_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	cartService "github.com/m04kA/SMC-StorefrontService/internal/service/cart"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingItemID     = "идентификатор позиции обязателен"
	msgSessionNotFound   = "сессия не найдена"
	msgQuantityTooLarge  = "количество превышает допустимый лимит на позицию"
	msgInsufficientStock = "недостаточно товара на складе"
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

// Handle PATCH /api/v1/session/cart/items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	itemID := mux.Vars(r)["itemId"]
	if itemID == "" {
		h.logger.Warn("PATCH /session/cart/items - Missing itemId: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingItemID)
		return
	}

	var req UpdateCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /session/cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateQuantity(r.Context(), sessionID, itemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cartService.ErrSessionNotFound):
			h.logger.Warn("PATCH /session/cart/items - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, cartService.ErrQuantityTooLarge):
			h.logger.Warn("PATCH /session/cart/items - Quantity too large: session_id=%s, item_id=%s, quantity=%d",
				sessionID, itemID, req.Quantity)
			handlers.RespondBadRequest(w, msgQuantityTooLarge)

		case errors.Is(err, cartService.ErrInsufficientStock):
			h.logger.Warn("PATCH /session/cart/items - Insufficient stock: session_id=%s, item_id=%s, quantity=%d",
				sessionID, itemID, req.Quantity)
			handlers.RespondConflict(w, msgInsufficientStock)

		default:
			h.logger.Error("PATCH /session/cart/items - Failed to update quantity: session_id=%s, item_id=%s, error=%v",
				sessionID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /session/cart/items - Quantity updated successfully: session_id=%s, item_id=%s, quantity=%d",
		sessionID, itemID, req.Quantity)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
