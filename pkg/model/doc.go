package model

// Document is a row of a collection or of a view. Records of a
// collection carry their fields in Data, view rows carry the emitted
// Key and Value.
type Document struct {
	ID    string                 `json:"id,omitempty" bson:"id,omitempty" cbor:"id,omitempty"`
	Key   interface{}            `json:"key" bson:"key" cbor:"key"`
	Value interface{}            `json:"value" bson:"value" cbor:"value"`
	Data  map[string]interface{} `json:"data,omitempty" bson:"data,omitempty" cbor:"data,omitempty"`
}
