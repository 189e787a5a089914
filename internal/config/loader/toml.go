package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOML decodes TOML documents with go-toml. Integers decode as int64.
var TOML Format = tomlFormat{}

type tomlFormat struct{}

func (tomlFormat) Name() string { return "toml" }

func (tomlFormat) Decode(source string, data []byte) (map[string]any, error) {
	m := map[string]any{}
	err := toml.Unmarshal(data, &m)
	if err == nil {
		return m, nil
	}

	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return nil, pe
}
