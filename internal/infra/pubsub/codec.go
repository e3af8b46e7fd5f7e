package pubsub

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Codec matches goka's codec interface.
type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

var _ Codec = &JSONCodec{}

// JSONCodec is used for messages that have no avro schema.
type JSONCodec struct {
	prototype reflect.Type
}

func newJSONCodec(prototype any) *JSONCodec {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return &JSONCodec{t}
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

func (c *JSONCodec) Decode(data []byte) (any, error) {
	if c.prototype == nil {
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("unmarshaling data: %w", err)
		}
		return value, nil
	}

	instance := reflect.New(c.prototype).Interface()
	if err := json.Unmarshal(data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance, nil
}
