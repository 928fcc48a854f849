package checkout

import (
	"context"

	checkoutUseCase "github.com/m04kA/SMC-StorefrontService/internal/usecase/checkout"
)

type CheckoutUseCase interface {
	Execute(ctx context.Context, req *checkoutUseCase.Request) (*checkoutUseCase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
