// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes a Date as its sparse Record, eg.
// {"decade":"1990s","year":1994,"month":6}.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Record())
}

// UnmarshalJSON decodes a Date from either a Record object, whose fields
// may be strings or numbers, or from a string or number which is
// interpreted by Parse. Values that cannot be interpreted result in an
// unset Date or unset fields rather than an error.
func (d *Date) UnmarshalJSON(data []byte) error {
	switch jsontext.Value(data).Kind() {
	case 'n':
		*d = Date{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Parse(s)
	case '{':
		var r Record
		if err := json.Unmarshal(data, &r); err != nil {
			return err
		}
		*d = FromRecord(r)
	case '0':
		*d = Parse(string(data))
	default:
		*d = Date{}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	return d.Record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, see UnmarshalJSON.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*d = Parse(value.Value)
	case yaml.MappingNode:
		var r Record
		if err := value.Decode(&r); err != nil {
			return err
		}
		*d = FromRecord(r)
	default:
		*d = Date{}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Date) UnmarshalText(text []byte) error {
	*d = Parse(string(text))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	switch f.kind {
	case numberField:
		if v := jsontext.Value(f.raw); v.IsValid() && v.Kind() == '0' {
			return []byte(f.raw), nil
		}
		return json.Marshal(f.raw)
	case stringField:
		return json.Marshal(f.raw)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler. Booleans, arrays and objects
// are retained as present fields that have no usable value.
func (f *Field) UnmarshalJSON(data []byte) error {
	switch jsontext.Value(data).Kind() {
	case 'n':
		*f = Null()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = String(s)
	case '0':
		*f = Field{kind: numberField, raw: string(data)}
	default:
		*f = Field{kind: stringField, raw: string(data)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Field) MarshalYAML() (any, error) {
	switch f.kind {
	case numberField:
		if n, ok := f.Int(); ok && strconv.Itoa(n) == f.raw {
			return n, nil
		}
		return f.raw, nil
	case stringField:
		return f.raw, nil
	}
	return nil, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		*f = Field{kind: stringField}
		return nil
	}
	switch value.ShortTag() {
	case "!!null":
		*f = Null()
	case "!!int", "!!float":
		*f = Field{kind: numberField, raw: value.Value}
	default:
		*f = String(value.Value)
	}
	return nil
}
