package create_session

import (
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(sess *session.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: sess.ID,
		CreatedAt: sess.CreatedAt,
	}
}
