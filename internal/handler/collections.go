package handler

import (
	"net/http"
)

type Collections struct {
	Base
}

func (s *Collections) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	Write(w, r, http.StatusOK, CollectionsResponse{
		Collections: s.Base.Collections.Names(),
	})
}

type CollectionsResponse struct {
	Collections []string `json:"collections"`
}
