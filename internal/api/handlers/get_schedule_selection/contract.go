package get_schedule_selection

import (
	"context"

	"github.com/m04kA/SMC-StorefrontService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSelection(ctx context.Context, sessionID string) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
