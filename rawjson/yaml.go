package rawjson

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML document into a Value. Mapping order is kept,
// so a YAML fixture yields the same key order as its JSON equivalent.
// Only the JSON subset of YAML is accepted: mapping keys must be strings
// and floats must be finite.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, fmt.Errorf("rawjson: decode yaml: %w", err)
	}
	if doc.Kind == 0 {
		return Null(), nil
	}
	v, err := fromYAMLNode(&doc)
	if err != nil {
		return Value{}, fmt.Errorf("rawjson: decode yaml: %w", err)
	}
	v.freeze()
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Value{kind: KindArray, arr: items}, nil
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			val, err := fromYAMLNode(v)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k.Value, err)
			}
			obj.put(k.Value, val)
		}
		return ObjectValue(obj), nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return Value{}, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, fmt.Errorf("line %d: %q is not a JSON number", n.Line, n.Value)
		}
		return Float(f), nil
	default:
		return String(n.Value), nil
	}
}
