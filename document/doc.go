// Package document provides the tree representation queried by package query.
//
// A document is a Value: one of Null, Bool, Number, String, Array or *Object.
// Objects keep their keys in document order, so results are emitted in the
// order the input was written. Values are never mutated after construction and
// may be shared between goroutines.
//
// Documents are obtained by decoding JSON (DecodeJSON, NewJSONDecoder), YAML
// (DecodeYAML, NewYAMLDecoder) or by converting any Go value with FromAny.
package document
