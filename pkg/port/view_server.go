package port

import (
	"context"

	"github.com/goydb/goyagg/pkg/model"
)

// ViewEngines maps a script language to the builder of its view
// servers.
type ViewEngines map[string]ViewServerBuilder

type ViewServerBuilder func(ctx context.Context, fn string) (ViewServer, error)

// ViewServer runs a map function over documents and returns the
// emitted rows.
type ViewServer interface {
	Process(ctx context.Context, docs []*model.Document) ([]*model.Document, error)
}
