package goyagg

import (
	"net/http"

	"github.com/goydb/goyagg/internal/adapter/search"
	"github.com/goydb/goyagg/internal/catalogue"
)

type Goyagg struct {
	Registry *catalogue.Registry
	Search   *search.Index
	Handler  http.Handler
}

func (g *Goyagg) Close() error {
	return g.Search.Close()
}
