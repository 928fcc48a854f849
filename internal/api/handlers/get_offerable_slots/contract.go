package get_offerable_slots

import (
	"context"

	getOfferableSlots "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_slots"
)

type GetOfferableSlotsUseCase interface {
	Execute(ctx context.Context, req *getOfferableSlots.Request) (*getOfferableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
