package handler

import (
	"net/http"

	uuid "github.com/satori/go.uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every response with a fresh v4 uuid, a request id
// sent by the client is kept.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewV4().String()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
