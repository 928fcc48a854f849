package get_offerable_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	getOfferableSlots "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateNotOfferable = "дата раньше минимального срока изготовления"
)

type Handler struct {
	useCase GetOfferableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOfferableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOfferableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getOfferableSlots.ErrDateNotOfferable):
			h.logger.Warn("GET /schedule/slots - Date not offerable: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateNotOfferable)

		default:
			h.logger.Error("GET /schedule/slots - Failed to compute slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
