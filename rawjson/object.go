package rawjson

import (
	"bytes"
	"encoding/json"
	"iter"
	"slices"
	"sort"
	"sync/atomic"
)

// Object is an insertion-ordered JSON object.
//
// An Object starts mutable and owned by a single builder. Freeze makes it
// immutable for good, after which it may be shared and read from any
// number of goroutines without locking. Objects produced by Decode are
// already frozen.
type Object struct {
	keys   []string
	values map[string]Value
	frozen atomic.Bool
}

// NewObject returns an empty, mutable object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Set stores v under key. A key that already exists keeps its position.
func (o *Object) Set(key string, v Value) error {
	if o.Frozen() {
		return &FrozenMutationError{Key: key, Op: "set"}
	}
	o.put(key, v)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (o *Object) Delete(key string) error {
	if o.Frozen() {
		return &FrozenMutationError{Key: key, Op: "delete"}
	}
	if _, ok := o.values[key]; !ok {
		return nil
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return nil
}

func (o *Object) put(key string, v Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Freeze makes o and every object nested in it immutable. It returns o so
// the call can close a builder expression. Freezing twice is a no-op.
func (o *Object) Freeze() *Object {
	if o == nil || o.frozen.Load() {
		return o
	}
	for _, k := range o.keys {
		o.values[k].freeze()
	}
	o.frozen.Store(true)
	return o
}

// Frozen reports whether o rejects mutation. A nil object counts as
// frozen.
func (o *Object) Frozen() bool {
	return o == nil || o.frozen.Load()
}

// Keys iterates over the keys in insertion order.
func (o *Object) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Entries iterates over key/value pairs in insertion order.
func (o *Object) Entries() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Clone returns a mutable deep copy of o. The original is untouched.
func (o *Object) Clone() *Object {
	out := NewObject()
	if o == nil {
		return out
	}
	for _, k := range o.keys {
		out.put(k, cloneValue(o.values[k]))
	}
	return out
}

func cloneValue(v Value) Value {
	switch v.kind {
	case KindObject:
		return ObjectValue(v.obj.Clone())
	case KindArray:
		items := make([]Value, len(v.arr))
		for i, item := range v.arr {
			items[i] = cloneValue(item)
		}
		return Value{kind: KindArray, arr: items}
	default:
		return v
	}
}

// Equal reports whether both objects hold the same keys with deeply
// equal values. Key order is ignored. A nil object equals an empty one.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for k, v := range o.Entries() {
		ov, ok := other.Get(k)
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Interface converts o into a map[string]any.
func (o *Object) Interface() map[string]any {
	out := make(map[string]any, o.Len())
	for k, v := range o.Entries() {
		out[k] = v.Interface()
	}
	return out
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Object) encode(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	i := 0
	for k, v := range o.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := v.encode(buf); err != nil {
			return err
		}
		i++
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON replaces the contents of o with data. The result is
// frozen.
func (o *Object) UnmarshalJSON(data []byte) error {
	if o.Frozen() {
		return &FrozenMutationError{Op: "unmarshal"}
	}
	parsed, err := DecodeObject(data)
	if err != nil {
		return err
	}
	o.keys = parsed.keys
	o.values = parsed.values
	o.frozen.Store(true)
	return nil
}

func (o *Object) String() string {
	b, err := o.MarshalJSON()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
