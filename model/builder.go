package model

import (
	"github.com/tailbits/browserkit/rawjson"
)

// Builder accumulates properties into a mutable raw object. The first
// failure sticks: later writes are skipped and Finish returns it.
type Builder struct {
	obj *rawjson.Object
	err error
}

func NewBuilder() *Builder {
	return &Builder{obj: rawjson.NewObject()}
}

// BuilderFrom starts from a mutable copy of an existing object, keeping
// its unknown properties.
func BuilderFrom(o *rawjson.Object) *Builder {
	if o == nil {
		return NewBuilder()
	}
	return &Builder{obj: o.Clone()}
}

func (b *Builder) Err() error { return b.err }

// Raw returns the object being built. It stays mutable until Finish.
func (b *Builder) Raw() *rawjson.Object { return b.obj }

// SetRaw stores v under key without going through a codec. It is how
// callers attach properties the model does not declare.
func (b *Builder) SetRaw(key string, v rawjson.Value) {
	if b.err != nil {
		return
	}
	b.err = b.obj.Set(key, v)
}

func (b *Builder) Delete(key string) {
	if b.err != nil {
		return
	}
	b.err = b.obj.Delete(key)
}

// Finish freezes the object. Writes after Finish fail with a
// rawjson.FrozenMutationError.
func (b *Builder) Finish() (*rawjson.Object, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.obj.Freeze(), nil
}

func Set[T any](b *Builder, key string, c Codec[T], v T) {
	if b.err != nil {
		return
	}
	b.err = Put(b.obj, key, c, v)
}

func SetOptional[T any](b *Builder, key string, c Codec[T], v Optional[T]) {
	if b.err != nil {
		return
	}
	b.err = PutOptional(b.obj, key, c, v)
}

func SetNullable[T any](b *Builder, key string, c Codec[T], v Nullable[T]) {
	if b.err != nil {
		return
	}
	b.err = PutNullable(b.obj, key, c, v)
}
