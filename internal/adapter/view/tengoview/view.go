package tengoview

import (
	"context"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/goydb/goyagg/pkg/model"
	"github.com/goydb/goyagg/pkg/port"
)

var _ port.ViewServer = (*ViewServer)(nil)

// modules map functions may import.
var modules = []string{"text", "math", "times", "fmt", "json", "enum"}

const prelude = `
_result := []
_doc := {}
emit := func(key, value) {
	_result = _result + [[key, value, _doc._id]]
}
`

const loop = `
for doc in docs {
	_doc = doc
	docFn(doc)
}`

// ViewServer evaluates a tengo map function.
type ViewServer struct {
	compiled *tengo.Compiled
}

// NewViewServer compiles the map function. Compiling never runs user
// code, so only a done ctx stops it.
func NewViewServer(ctx context.Context, fn string) (port.ViewServer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var source string
	for _, m := range modules {
		source += m + ` := import("` + m + `")` + "\n"
	}
	source += prelude + "docFn := " + fn + "\n" + loop
	script := tengo.NewScript([]byte(source))
	script.SetImports(stdlib.GetModuleMap(modules...))

	err := script.Add("docs", []interface{}{})
	if err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script error %v: %w", fn, err)
	}

	return &ViewServer{compiled: compiled}, nil
}

// Process runs the map function over docs. The script stops when ctx
// is done.
func (s *ViewServer) Process(ctx context.Context, docs []*model.Document) ([]*model.Document, error) {
	err := s.compiled.Set("docs", docData(docs))
	if err != nil {
		return nil, err
	}

	err = s.compiled.RunContext(ctx)
	if err != nil {
		return nil, err
	}

	return emitted(s.compiled.Get("_result").Array())
}

// docData exposes the document id to the script as _id.
func docData(docs []*model.Document) []interface{} {
	data := make([]interface{}, len(docs))
	for i, doc := range docs {
		d := make(map[string]interface{}, len(doc.Data)+1)
		for k, v := range doc.Data {
			d[k] = v
		}
		d["_id"] = doc.ID
		data[i] = d
	}
	return data
}

func emitted(result []interface{}) ([]*model.Document, error) {
	rows := make([]*model.Document, len(result))
	for i, r := range result {
		row, ok := r.([]interface{})
		if !ok || len(row) != 3 {
			return nil, fmt.Errorf("unexpected emitted row %v", r)
		}
		id, _ := row[2].(string)
		rows[i] = &model.Document{ID: id, Key: row[0], Value: row[1]}
	}
	return rows, nil
}
