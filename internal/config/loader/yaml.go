package loader

import (
	"errors"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML decodes YAML documents with yaml.v3. Values are normalized to the
// types the TOML decoder produces, so an empty document is an empty map
// and integers are int64.
var YAML Format = yamlFormat{}

type yamlFormat struct{}

// yamlLine extracts the line number from yaml.v3 error messages such as
// "yaml: line 3: did not find expected node content".
var yamlLine = regexp.MustCompile(`line (\d+)`)

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Decode(source string, data []byte) (map[string]any, error) {
	var m map[string]any
	err := yaml.Unmarshal(data, &m)
	if err == nil {
		if m == nil {
			return map[string]any{}, nil
		}
		return normalize(m), nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		pe.Message = typeErr.Errors[0]
	}
	if match := yamlLine.FindStringSubmatch(pe.Message); match != nil {
		pe.Line, _ = strconv.Atoi(match[1])
	}
	return nil, pe
}

func normalize(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case map[string]any:
		return normalize(val)
	case []any:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
