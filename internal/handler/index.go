package handler

import (
	"net/http"
)

const Version = "0.1.0"

type Index struct{}

func (s *Index) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	response := &Info{
		Goyagg:  "Welcome",
		Version: Version,
		Features: []string{
			"examples",
			"search",
			"query",
		},
		Vendor: Vendor{
			Name: "goyagg",
		},
	}
	Write(w, r, http.StatusOK, response)
}

type Info struct {
	Goyagg   string   `json:"goyagg"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Vendor   Vendor   `json:"vendor"`
}

type Vendor struct {
	Name string `json:"name"`
}
