package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-StorefrontService/internal/api/handlers"
)

// SessionHeader заголовок, которым клиент передает идентификатор сессии
const SessionHeader = "X-Session-ID"

// Session проверяет наличие заголовка X-Session-ID на защищенных маршрутах
// Обработчики читают идентификатор сами через SessionID
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(SessionHeader) == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-Session-ID")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionID возвращает идентификатор сессии из заголовка запроса
func SessionID(r *http.Request) string {
	return r.Header.Get(SessionHeader)
}
