package reducer

import (
	"context"
	"math"

	"github.com/goydb/goyagg/internal/adapter/keygroup"
	"github.com/goydb/goyagg/pkg/model"
)

// source: https://docs.couchdb.org/en/stable/ddocs/ddocs.html?highlight=_stats#built-in-reduce-functions
type Statistics struct {
	Sum    float64 `json:"sum" bson:"sum" cbor:"sum"`
	Min    float64 `json:"min" bson:"min" cbor:"min"`
	Max    float64 `json:"max" bson:"max" cbor:"max"`
	Count  int64   `json:"count" bson:"count" cbor:"count"`
	SumSqr float64 `json:"sumsqr" bson:"sumsqr" cbor:"sumsqr"`
}

type Stats struct {
	groups *keygroup.Groups[Statistics]
}

func NewStats() *Stats {
	return &Stats{
		groups: keygroup.New(func() Statistics {
			return Statistics{Min: math.Inf(1), Max: math.Inf(-1)}
		}),
	}
}

func (r *Stats) Reduce(doc *model.Document, group bool) {
	s := r.groups.Get(doc, group)

	f, ok := toFloat(doc.Value)
	if !ok {
		return
	}
	s.Sum += f
	s.SumSqr += f * f
	s.Min = math.Min(s.Min, f)
	s.Max = math.Max(s.Max, f)
	s.Count++
}

func (r *Stats) Result(context.Context) ([]*model.Document, error) {
	return r.groups.Result(func(s *Statistics) interface{} {
		if s.Count == 0 {
			return nil
		}
		return *s
	}), nil
}
