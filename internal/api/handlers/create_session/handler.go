package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
)

type Handler struct {
	store  SessionStore
	logger Logger
}

func NewHandler(store SessionStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromSession(sess))
}
