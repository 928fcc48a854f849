package create_session

import (
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
)

type SessionStore interface {
	Create() *session.Session
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
