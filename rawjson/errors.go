package rawjson

import (
	"errors"
	"fmt"
)

// ErrFrozen is matched by every FrozenMutationError.
var ErrFrozen = errors.New("rawjson: object is frozen")

// FrozenMutationError reports a write to a frozen Object. It always points
// at a bug in the code building the object, never at bad input data.
type FrozenMutationError struct {
	Key string
	Op  string
}

func (e *FrozenMutationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("rawjson: %s on frozen object", e.Op)
	}
	return fmt.Sprintf("rawjson: %s %q on frozen object", e.Op, e.Key)
}

func (e *FrozenMutationError) Is(target error) bool {
	return target == ErrFrozen
}
