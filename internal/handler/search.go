package handler

import (
	"net/http"
)

type Search struct {
	Base
}

func (s *Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	options := r.URL.Query()
	q := stringOption("q", "query", options)
	if q == "" {
		WriteError(w, r, http.StatusBadRequest, "query parameter q is required")
		return
	}
	limit := int(intOption("limit", int64(s.SearchLimit), options))
	if limit <= 0 {
		WriteError(w, r, http.StatusBadRequest, "limit must be positive")
		return
	}

	res, err := s.Search.Search(r.Context(), q, limit)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	Write(w, r, http.StatusOK, res)
}
