package document

import (
	"iter"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a node of a document tree. The set of implementations is closed:
// Null, Bool, Number, String, Array and *Object.
type Value interface {
	Kind() Kind
	value()
}

type (
	Null   struct{}
	Bool   bool
	String string
	Array  []Value
)

// Number holds the decimal literal text of a numeric value so that integers
// wider than float64 survive a round trip.
type Number string

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) value()   {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}
func (Array) value()  {}

// Int64 reports the number as an int64 when it is integral and in range.
func (n Number) Int64() (int64, bool) {
	i, err := strconv.ParseInt(string(n), 10, 64)
	return i, err == nil
}

// Float64 parses the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

func (n Number) String() string { return string(n) }

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from string keys to values. Iteration follows
// the order in which keys were first added.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject builds an object from members. A repeated key keeps its first
// position and takes the last value.
func NewObject(members ...Member) *Object {
	o := &Object{
		keys:   make([]string, 0, len(members)),
		fields: make(map[string]Value, len(members)),
	}
	for _, m := range members {
		o.set(m.Key, m.Value)
	}
	return o
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) value()     {}

func (o *Object) set(key string, v Value) {
	if o.fields == nil {
		o.fields = make(map[string]Value)
	}
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member keys in document order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All iterates members in document order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Members returns a copy of the members in document order.
func (o *Object) Members() []Member {
	members := make([]Member, 0, o.Len())
	for k, v := range o.All() {
		members = append(members, Member{Key: k, Value: v})
	}
	return members
}
