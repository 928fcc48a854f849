package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-StorefrontService/internal/usecase/quote_price"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidInput    = "некорректные входные данные"
	msgProductNotFound = "товар не найден"
	msgVariantRequired = "для стандартного товара необходимо указать вариант"
	msgVariantNotFound = "вариант товара не найден"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /price-quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrProductNotFound):
			h.logger.Warn("POST /price-quote - Product not found: slug=%s", req.ProductSlug)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, quotePrice.ErrVariantRequired):
			h.logger.Warn("POST /price-quote - Variant required: slug=%s", req.ProductSlug)
			handlers.RespondBadRequest(w, msgVariantRequired)

		case errors.Is(err, quotePrice.ErrVariantNotFound):
			h.logger.Warn("POST /price-quote - Variant not found: slug=%s, variant_id=%s",
				req.ProductSlug, req.VariantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		default:
			h.logger.Error("POST /price-quote - Failed to quote price: slug=%s, error=%v",
				req.ProductSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-quote - Price quoted successfully: slug=%s, final_price=%s",
		result.ProductSlug, result.FinalPrice.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
