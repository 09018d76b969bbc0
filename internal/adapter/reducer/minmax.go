package reducer

import (
	"context"

	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
)

type extreme struct {
	value interface{}
	f     float64
	set   bool
}

// Min keeps the smallest numeric value per group. Groups without any
// numeric value reduce to nil.
type Min struct {
	groups *keygroup.Groups[extreme]
	better func(a, b float64) bool
}

func NewMin() *Min {
	return &Min{
		groups: keygroup.New(func() extreme { return extreme{} }),
		better: func(a, b float64) bool { return a < b },
	}
}

// NewMax returns a reducer keeping the largest numeric value per group.
func NewMax() *Min {
	return &Min{
		groups: keygroup.New(func() extreme { return extreme{} }),
		better: func(a, b float64) bool { return a > b },
	}
}

func (r *Min) Reduce(doc *model.Document, group bool) {
	e := r.groups.Get(doc, group)

	f, ok := toFloat(doc.Value)
	if !ok {
		return
	}
	if !e.set || r.better(f, e.f) {
		e.value, e.f, e.set = doc.Value, f, true
	}
}

func (r *Min) Result(context.Context) ([]*model.Document, error) {
	return r.groups.Result(func(e *extreme) interface{} {
		return e.value
	}), nil
}
