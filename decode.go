package browserkit

import (
	"fmt"

	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

// decodeResponse wraps a response body in T without validating it,
// unless the call is strict.
func decodeResponse[T model.Entity](c *Client, cl *call, body []byte, fromRaw func(*rawjson.Object) T) (ent T, err error) {
	obj, err := rawjson.DecodeObject(body)
	if err != nil {
		return ent, fmt.Errorf("decode %s: %w", cl.op.Output.Name(), err)
	}
	ent = fromRaw(obj)

	if cl.config.strict {
		if err := c.checkResponse(ent, body); err != nil {
			return ent, err
		}
	}
	return ent, nil
}

// decodeList wraps every element of a JSON array response.
func decodeList[T model.Entity](c *Client, cl *call, body []byte, fromRaw func(*rawjson.Object) T) ([]T, error) {
	name := cl.op.Output.Name()
	v, err := rawjson.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s list: %w", name, err)
	}
	if v.Kind() != rawjson.KindArray {
		return nil, &model.TypeMismatchError{Expected: "array of " + name, Got: v.Kind()}
	}

	out := make([]T, 0, v.Len())
	for i, item := range v.Items() {
		obj, ok := item.Object()
		if !ok {
			return nil, &model.InvalidDataError{
				Path: fmt.Sprintf("[%d]", i),
				Err:  &model.TypeMismatchError{Expected: name, Got: item.Kind()},
			}
		}
		ent := fromRaw(obj)
		if cl.config.strict {
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			if err := c.checkResponse(ent, data); err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
		}
		out = append(out, ent)
	}
	return out, nil
}

func (c *Client) checkResponse(ent model.Entity, body []byte) error {
	if err := ent.Validate(); err != nil {
		return fmt.Errorf("validate %s: %w", ent.Name(), err)
	}
	if err := c.registry.checkBody(ent, body); err != nil {
		return fmt.Errorf("check %s: %w", ent.Name(), err)
	}
	return nil
}
