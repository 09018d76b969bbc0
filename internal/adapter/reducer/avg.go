package reducer

import (
	"context"

	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
)

type mean struct {
	sum   number
	count int64
}

// Average is sum / count over the numeric values of a group, as
// float64. Groups without numeric values reduce to nil.
type Average struct {
	groups *keygroup.Groups[mean]
}

func NewAverage() *Average {
	return &Average{
		groups: keygroup.New(func() mean { return mean{} }),
	}
}

func (r *Average) Reduce(doc *model.Document, group bool) {
	m := r.groups.Get(doc, group)
	if m.sum.add(doc.Value) {
		m.count++
	}
}

func (r *Average) Result(context.Context) ([]*model.Document, error) {
	return r.groups.Result(func(m *mean) interface{} {
		if m.count == 0 {
			return nil
		}
		return m.sum.float() / float64(m.count)
	}), nil
}
