package port

import (
	"context"

	"github.com/goydb/goyagg/pkg/model"
)

// Collections provides the documents of the named fixture collections.
type Collections interface {
	Names() []string
	Documents(ctx context.Context, name string) ([]*model.Document, error)
}
