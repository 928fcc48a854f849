package select_schedule_time

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

type ScheduleService interface {
	SelectTime(ctx context.Context, req *models.SelectTimeRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
