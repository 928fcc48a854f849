package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	"github.com/m04kA/SMC-StorefrontService/internal/api/middleware"
	checkoutUseCase "github.com/m04kA/SMC-StorefrontService/internal/usecase/checkout"
)

const (
	msgInvalidBody          = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные оформления заказа"
	msgSessionNotFound      = "сессия не найдена"
	msgEmptyCart            = "корзина пуста"
	msgScheduleNotOfferable = "выбранное время исполнения больше не доступно"
	msgSlotExhausted        = "лимит заказов на выбранный слот исчерпан"
	msgInsufficientStock    = "недостаточно товара на складе"
	msgProductNotFound      = "товар не найден"
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/session/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /session/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, checkoutUseCase.ErrInvalidInput):
			h.logger.Warn("POST /session/checkout - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkoutUseCase.ErrSessionNotFound):
			h.logger.Warn("POST /session/checkout - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, checkoutUseCase.ErrEmptyCart):
			h.logger.Warn("POST /session/checkout - Empty cart: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutUseCase.ErrScheduleNotOfferable):
			h.logger.Warn("POST /session/checkout - Schedule not offerable: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgScheduleNotOfferable)

		case errors.Is(err, checkoutUseCase.ErrSlotExhausted):
			h.logger.Warn("POST /session/checkout - Slot exhausted: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotExhausted)

		case errors.Is(err, checkoutUseCase.ErrInsufficientStock):
			h.logger.Warn("POST /session/checkout - Insufficient stock: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgInsufficientStock)

		case errors.Is(err, checkoutUseCase.ErrProductNotFound):
			h.logger.Warn("POST /session/checkout - Product not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgProductNotFound)

		default:
			h.logger.Error("POST /session/checkout - Failed to place order: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /session/checkout - Order placed successfully: session_id=%s, order_number=%s, grand_total=%s",
		sessionID, result.OrderNumber, result.GrandTotal.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
