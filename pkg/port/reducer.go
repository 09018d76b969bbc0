package port

import (
	"context"

	"github.com/goydb/goyagg/pkg/model"
)

// ReducerEngines maps a script language to the builder of its
// reducers.
type ReducerEngines map[string]ReducerServerBuilder

type ReducerServerBuilder func(ctx context.Context, fn string) (Reducer, error)

// Reducer consumes view rows one by one and returns one row per
// distinct key, in the order the keys were first seen. Without group
// all rows are reduced into a single row with a nil key. Result fails
// if a reduce function could not be evaluated or ctx is done.
type Reducer interface {
	Reduce(doc *model.Document, group bool)
	Result(ctx context.Context) ([]*model.Document, error)
}
