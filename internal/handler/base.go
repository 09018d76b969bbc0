package handler

import (
	"github.com/goydb/goyagg/internal/adapter/search"
	"github.com/goydb/goyagg/internal/catalogue"
	"github.com/goydb/goyagg/pkg/port"
)

type Base struct {
	Registry    *catalogue.Registry
	Search      *search.Index
	Collections port.Collections
	SearchLimit int
}
