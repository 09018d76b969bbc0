// Package search indexes the catalogue for full text search.
package search

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/goydb/goyagg/pkg/model"
)

// Index is an in-memory bleve index over example infos.
type Index struct {
	idx bleve.Index
}

func NewIndex(infos []model.ExampleInfo) (*Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, err
	}

	batch := idx.NewBatch()
	for _, info := range infos {
		err := batch.Index(info.Name, info)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", info.Name, err)
		}
	}
	err = idx.Batch(batch)
	if err != nil {
		return nil, err
	}

	return &Index{idx: idx}, nil
}

type Hit struct {
	Name  string  `json:"name" bson:"name" cbor:"name"`
	Score float64 `json:"score" bson:"score" cbor:"score"`
}

type Result struct {
	Total uint64 `json:"total" bson:"total" cbor:"total"`
	Hits  []Hit  `json:"hits" bson:"hits" cbor:"hits"`
}

// Search runs a bleve query string query, hits are ordered by score.
func (i *Index) Search(ctx context.Context, query string, limit int) (*Result, error) {
	q := bleve.NewQueryStringQuery(query)
	searchRequest := bleve.NewSearchRequestOptions(q, limit, 0, false)
	res, err := i.idx.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, err
	}

	sr := &Result{
		Total: res.Total,
		Hits:  make([]Hit, 0, len(res.Hits)),
	}
	for _, hit := range res.Hits {
		sr.Hits = append(sr.Hits, Hit{
			Name:  hit.ID,
			Score: hit.Score,
		})
	}

	return sr, nil
}

func (i *Index) Count() (uint64, error) {
	return i.idx.DocCount()
}

func (i *Index) Close() error {
	return i.idx.Close()
}
