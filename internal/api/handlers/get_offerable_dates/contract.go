package get_offerable_dates

import (
	"context"

	getOfferableDates "github.com/m04kA/SMC-StorefrontService/internal/usecase/get_offerable_dates"
)

type GetOfferableDatesUseCase interface {
	Execute(ctx context.Context, req *getOfferableDates.Request) (*getOfferableDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
