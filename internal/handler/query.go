package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goydb/goyagg/internal/adapter/docs"
	"github.com/goydb/goyagg/internal/adapter/reducer"
	"github.com/goydb/goyagg/internal/controller"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

type Query struct {
	Base
}

type QueryRequest struct {
	Collection string `mapstructure:"collection"`
	Language   string `mapstructure:"language"`
	Map        string `mapstructure:"map"`
	Reduce     string `mapstructure:"reduce"`
	Group      bool   `mapstructure:"group"`
}

func (s *Query) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var body map[string]interface{}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var q QueryRequest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &q,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	err = dec.Decode(body)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rows, total, err := controller.View{
		Collections: s.Base.Collections,
		Collection:  q.Collection,
		Functions: model.ViewFunctions{
			Language: q.Language,
			MapFn:    q.Map,
			ReduceFn: q.Reduce,
		},
		Group: q.Group,
	}.Run(r.Context())
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, docs.ErrUnknownCollection) {
			status = http.StatusNotFound
		} else if !isQueryError(err) {
			log.Warn().Err(err).Str("collection", q.Collection).Str("request_id", r.Header.Get(RequestIDHeader)).Msg("query failed")
		}
		WriteError(w, r, status, err.Error())
		return
	}

	response := QueryResponse{
		TotalRows: total,
		Rows:      make([]Rows, len(rows)),
	}
	for i, doc := range rows {
		response.Rows[i].ID = doc.ID
		response.Rows[i].Key = doc.Key
		response.Rows[i].Value = doc.Value
	}

	Write(w, r, http.StatusOK, response)
}

func isQueryError(err error) bool {
	return errors.Is(err, controller.ErrNoMapFunction) ||
		errors.Is(err, controller.ErrUnknownLanguage) ||
		errors.Is(err, reducer.ErrUnknownReducer)
}

type QueryResponse struct {
	TotalRows int    `json:"total_rows"`
	Rows      []Rows `json:"rows"`
}

type Rows struct {
	ID    string      `json:"id,omitempty"`
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}
