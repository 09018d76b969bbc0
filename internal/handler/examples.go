package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goydb/goyagg/internal/catalogue"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/rs/zerolog/log"
)

type Examples struct {
	Base
}

func (s *Examples) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	infos := s.Registry.Infos()
	Write(w, r, http.StatusOK, ExamplesResponse{
		TotalRows: len(infos),
		Examples:  infos,
	})
}

type ExamplesResponse struct {
	TotalRows int                 `json:"total_rows"`
	Examples  []model.ExampleInfo `json:"examples"`
}

type ExampleRun struct {
	Base
}

func (s *ExampleRun) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	name := mux.Vars(r)["name"]
	result, err := s.Registry.Run(r.Context(), name)
	if errors.Is(err, catalogue.ErrUnknownExample) {
		WriteError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		log.Error().Err(err).Str("example", name).Str("request_id", r.Header.Get(RequestIDHeader)).Msg("example failed")
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	Write(w, r, http.StatusOK, ExampleResponse{
		Name:   name,
		Result: result,
	})
}

type ExampleResponse struct {
	Name   string      `json:"name"`
	Result interface{} `json:"result"`
}
