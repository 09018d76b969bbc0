package reducer

import (
	"context"

	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
)

// Sum adds up numeric values, other values count as zero.
type Sum struct {
	groups *keygroup.Groups[number]
}

func NewSum() *Sum {
	return &Sum{
		groups: keygroup.New(func() number { return number{} }),
	}
}

func (r *Sum) Reduce(doc *model.Document, group bool) {
	r.groups.Get(doc, group).add(doc.Value)
}

func (r *Sum) Result(context.Context) ([]*model.Document, error) {
	return r.groups.Result(func(n *number) interface{} {
		return n.value()
	}), nil
}
