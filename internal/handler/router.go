package handler

import (
	"github.com/goydb/goyagg/internal/adapter/search"
	"github.com/goydb/goyagg/internal/catalogue"
	"github.com/goydb/goyagg/pkg/port"

	"github.com/gorilla/mux"
)

type Router struct {
	Registry    *catalogue.Registry
	Search      *search.Index
	Collections port.Collections
	SearchLimit int
}

func (router Router) Build(r *mux.Router) error {
	b := Base{
		Registry:    router.Registry,
		Search:      router.Search,
		Collections: router.Collections,
		SearchLimit: router.SearchLimit,
	}

	r.Use(RequestID)

	r.Methods("GET").Path("/_examples").Handler(&Examples{Base: b})
	r.Methods("GET").Path("/_examples/{name}").Handler(&ExampleRun{Base: b})
	r.Methods("GET").Path("/_search").Handler(&Search{Base: b})
	r.Methods("POST").Path("/_query").Handler(&Query{Base: b})
	r.Methods("GET").Path("/_collections").Handler(&Collections{Base: b})

	r.Methods("GET").Path("/").Handler(&Index{})

	return nil
}
