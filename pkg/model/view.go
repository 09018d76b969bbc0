package model

const (
	LanguageJavaScript = "javascript"
	LanguageTengo      = "tengo"
)

// ViewFunctions is an ad-hoc map/reduce query. An empty ReduceFn
// returns the mapped rows, names starting with an underscore select a
// built-in reducer, everything else is reduce function source.
type ViewFunctions struct {
	Language string `json:"language,omitempty"`
	MapFn    string `json:"map"`
	ReduceFn string `json:"reduce,omitempty"`
}

// IsBuiltinReduce reports if ReduceFn names a built-in reducer.
func (vfn ViewFunctions) IsBuiltinReduce() bool {
	return len(vfn.ReduceFn) > 0 && vfn.ReduceFn[0] == '_'
}
