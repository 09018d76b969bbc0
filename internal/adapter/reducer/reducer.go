// Package reducer implements the built-in reduce functions of views.
package reducer

import (
	"errors"
	"fmt"

	"github.com/goydb/goyagg/pkg/port"
)

var ErrUnknownReducer = errors.New("unknown reducer")

const (
	CountName   = "_count"
	SumName     = "_sum"
	MinName     = "_min"
	MaxName     = "_max"
	AverageName = "_avg"
	StatsName   = "_stats"
	NoneName    = ""
)

var builtins = map[string]func() port.Reducer{
	CountName:   func() port.Reducer { return NewCount() },
	SumName:     func() port.Reducer { return NewSum() },
	MinName:     func() port.Reducer { return NewMin() },
	MaxName:     func() port.Reducer { return NewMax() },
	AverageName: func() port.Reducer { return NewAverage() },
	StatsName:   func() port.Reducer { return NewStats() },
	NoneName:    func() port.Reducer { return NewNone() },
}

// New returns a fresh built-in reducer.
func New(name string) (port.Reducer, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
	}
	return b(), nil
}
