package avro

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/hamba/avro/v2"
)

// AvroCodec encodes records with their static schema and no registry
// framing. It is used when no schema registry is configured.
type AvroCodec struct {
	prototype reflect.Type
	schema    avro.Schema
}

var parsedSchemas sync.Map

func parseSchema(definition string) (avro.Schema, error) {
	if cached, ok := parsedSchemas.Load(definition); ok {
		return cached.(avro.Schema), nil
	}

	schema, err := avro.Parse(definition)
	if err != nil {
		return nil, fmt.Errorf("parsing avro schema: %w", err)
	}
	parsedSchemas.Store(definition, schema)
	return schema, nil
}

func NewAvroCodec(prototype Message) (*AvroCodec, error) {
	schema, err := parseSchema(prototype.Schema())
	if err != nil {
		return nil, err
	}

	return &AvroCodec{
		prototype: messageType(prototype),
		schema:    schema,
	}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	data, err := avro.Marshal(c.schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to a new instance of the prototype type.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	instance := reflect.New(c.prototype).Interface()
	if err := avro.Unmarshal(c.schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from avro: %w", err)
	}

	return instance, nil
}

func messageType(prototype any) reflect.Type {
	t := reflect.TypeOf(prototype)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
