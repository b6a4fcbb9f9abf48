package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-Id"

// RequestIDMiddleware присваивает каждому запросу идентификатор.
// Входящий X-Request-Id сохраняется, иначе генерируется новый UUID.
// Идентификатор возвращается клиенту и попадает в лог запроса.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			r.Header.Set(RequestIDHeader, requestID)
		}

		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r)
	})
}

// RequestID возвращает идентификатор запроса, присвоенный middleware
func RequestID(r *http.Request) string {
	return r.Header.Get(RequestIDHeader)
}
