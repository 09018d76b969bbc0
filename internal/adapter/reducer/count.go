package reducer

import (
	"context"

	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
)

type Count struct {
	groups *keygroup.Groups[int64]
}

func NewCount() *Count {
	return &Count{
		groups: keygroup.New(func() int64 { return 0 }),
	}
}

func (r *Count) Reduce(doc *model.Document, group bool) {
	*r.groups.Get(doc, group)++
}

func (r *Count) Result(context.Context) ([]*model.Document, error) {
	return r.groups.Result(func(n *int64) interface{} {
		return *n
	}), nil
}
