package model

// ExampleInfo describes an entry of the aggregation catalogue.
type ExampleInfo struct {
	Name        string `json:"name" bson:"name" cbor:"name"`
	Description string `json:"description" bson:"description" cbor:"description"`
	Operation   string `json:"operation" bson:"operation" cbor:"operation"`
}
