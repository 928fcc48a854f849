package add_cart_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	addCartItem "github.com/m04kA/SMC-StorefrontService/internal/usecase/add_cart_item"
)

const (
	msgInvalidBody             = "некорректное тело запроса"
	msgInvalidInput            = "некорректные входные данные"
	msgSessionNotFound         = "сессия не найдена"
	msgProductNotFound         = "товар не найден"
	msgVariantNotFound         = "вариант товара не найден"
	msgOutOfStock              = "недостаточно товара на складе"
	msgCustomizationIncomplete = "не заполнены обязательные группы кастомизации"
	msgScheduleRequired        = "сначала необходимо выбрать дату и время исполнения"
)

type Handler struct {
	useCase AddCartItemUseCase
	logger  Logger
}

func NewHandler(useCase AddCartItemUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/cart/items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var req AddCartItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session/cart/items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, addCartItem.ErrInvalidInput):
			h.logger.Warn("POST /session/cart/items - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, addCartItem.ErrSessionNotFound):
			h.logger.Warn("POST /session/cart/items - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, addCartItem.ErrProductNotFound):
			h.logger.Warn("POST /session/cart/items - Product not found: session_id=%s, slug=%s",
				sessionID, req.ProductSlug)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, addCartItem.ErrVariantNotFound):
			h.logger.Warn("POST /session/cart/items - Variant not found: session_id=%s, slug=%s, variant_id=%s",
				sessionID, req.ProductSlug, req.VariantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, addCartItem.ErrOutOfStock):
			h.logger.Warn("POST /session/cart/items - Out of stock: session_id=%s, slug=%s, variant_id=%s, quantity=%d",
				sessionID, req.ProductSlug, req.VariantID, req.Quantity)
			handlers.RespondConflict(w, msgOutOfStock)

		case errors.Is(err, addCartItem.ErrCustomizationIncomplete):
			h.logger.Warn("POST /session/cart/items - Customization incomplete: session_id=%s, slug=%s",
				sessionID, req.ProductSlug)
			handlers.RespondBadRequest(w, msgCustomizationIncomplete)

		case errors.Is(err, addCartItem.ErrScheduleRequired):
			h.logger.Warn("POST /session/cart/items - Schedule required: session_id=%s, slug=%s",
				sessionID, req.ProductSlug)
			handlers.RespondBadRequest(w, msgScheduleRequired)

		default:
			h.logger.Error("POST /session/cart/items - Failed to add item: session_id=%s, slug=%s, error=%v",
				sessionID, req.ProductSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session/cart/items - Item added successfully: session_id=%s, item_id=%s, slug=%s",
		sessionID, result.ItemID, req.ProductSlug)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
