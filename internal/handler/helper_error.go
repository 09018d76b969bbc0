package handler

import (
	"net/http"
	"strings"
)

func WriteError(w http.ResponseWriter, r *http.Request, status int, reason string) {
	statusText := strings.ToLower(http.StatusText(status))
	statusText = strings.ReplaceAll(statusText, " ", "_")
	statusText = strings.ReplaceAll(statusText, "'", "")

	Write(w, r, status, ErrorResponse{
		Error:  statusText,
		Reason: reason,
	})
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
