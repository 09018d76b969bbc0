package reducer

import (
	"context"

	"github.com/goydb/goyagg/pkg/model"
)

// None does not reduce, rows are returned as they came in.
type None struct {
	docs []*model.Document
}

func NewNone() *None {
	return &None{
		docs: make([]*model.Document, 0),
	}
}

func (r *None) Reduce(doc *model.Document, group bool) {
	r.docs = append(r.docs, doc)
}

func (r *None) Result(context.Context) ([]*model.Document, error) {
	return r.docs, nil
}
