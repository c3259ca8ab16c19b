package data

import (
	"encoding/json"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// ParseJSONOrYAML is used in the same way as json.Unmarshal, but also accepts
// YAML input: if the data is not valid JSON, it is parsed as YAML, normalized
// to JSON-compatible structures, and unmarshaled through the JSON path so the
// target's json tags apply either way.
func ParseJSONOrYAML(raw []byte, target interface{}) error {
	if err := json.Unmarshal(raw, target); err == nil {
		return nil
	}
	var tree interface{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return err
	}
	normalized, err := normalizeYAMLTree(tree)
	if err != nil {
		return err
	}
	jsonData, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonData, target)
}

// normalizeYAMLTree rewrites the interface{}-keyed maps some YAML decoders
// produce into string-keyed maps, recursively. Non-string keys are an error
// since they have no JSON representation.
func normalizeYAMLTree(tree interface{}) (interface{}, error) {
	switch tree := tree.(type) {
	case []interface{}:
		out := make([]interface{}, 0, len(tree))
		for _, v := range tree {
			v1, err := normalizeYAMLTree(v)
			if err != nil {
				return nil, err
			}
			out = append(out, v1)
		}
		return out, nil
	case map[string]interface{}:
		out := make(map[string]interface{}, len(tree))
		for k, v := range tree {
			v1, err := normalizeYAMLTree(v)
			if err != nil {
				return nil, err
			}
			out[k] = v1
		}
		return out, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(tree))
		for k, v := range tree {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("YAML data contained a map key of type %T; only string keys are allowed", k)
			}
			v1, err := normalizeYAMLTree(v)
			if err != nil {
				return nil, err
			}
			out[key] = v1
		}
		return out, nil
	default:
		return tree, nil
	}
}
