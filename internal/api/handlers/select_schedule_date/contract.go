package select_schedule_date

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

type ScheduleService interface {
	SelectDate(ctx context.Context, req *models.SelectDateRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
