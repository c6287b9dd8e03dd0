package model

// Optional is a property that may be omitted. None means the key is
// absent from the raw object.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) IsSet() bool {
	return o.ok
}

// Or returns the value, or def when it is not set.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Presence is the state of a nullable property.
type Presence uint8

const (
	Absent Presence = iota
	Null
	Present
)

func (p Presence) String() string {
	switch p {
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Nullable is a property that may be omitted or explicitly null. The
// two are distinct on the wire: Absent drops the key, Null writes a
// JSON null.
type Nullable[T any] struct {
	value T
	state Presence
}

func Value[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, state: Present}
}

func NullOf[T any]() Nullable[T] {
	return Nullable[T]{state: Null}
}

func AbsentOf[T any]() Nullable[T] {
	return Nullable[T]{}
}

func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.state == Present
}

func (n Nullable[T]) State() Presence { return n.state }
func (n Nullable[T]) IsNull() bool    { return n.state == Null }
func (n Nullable[T]) IsAbsent() bool  { return n.state == Absent }
