package avro

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/hamba/avro/v2"
	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
	"golang.org/x/sync/singleflight"
)

const (
	_magicByte    = 0
	_headerLength = 5
)

// SchemaRegistry is the subset of srclient used by ConfluentAvroCodec.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

var _ SchemaRegistry = (*srclient.SchemaRegistryClient)(nil)

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big endian schema id and the avro binary body.
type ConfluentAvroCodec struct {
	prototype      Message
	schemaRegistry SchemaRegistry
	subject        string

	registration singleflight.Group
	mu           sync.RWMutex
	schemaID     int
	encoder      *goavro.Codec
	readers      map[int]avro.Schema
}

func NewConfluentAvroCodec(prototype Message, schemaRegistry SchemaRegistry) *ConfluentAvroCodec {
	return &ConfluentAvroCodec{
		prototype:      prototype,
		schemaRegistry: schemaRegistry,
		subject:        prototype.Subject() + "-value",
		readers:        make(map[int]avro.Schema),
	}
}

// writer returns the registered schema id and codec for the prototype,
// registering the schema the first time it is needed.
func (c *ConfluentAvroCodec) writer() (int, *goavro.Codec, error) {
	c.mu.RLock()
	id, codec := c.schemaID, c.encoder
	c.mu.RUnlock()
	if codec != nil {
		return id, codec, nil
	}

	_, err, _ := c.registration.Do(c.subject, func() (any, error) {
		registered, err := c.schemaRegistry.GetLatestSchema(c.subject)
		if err != nil || registered == nil {
			registered, err = c.schemaRegistry.CreateSchema(c.subject, c.prototype.Schema(), srclient.Avro)
			if err != nil {
				return nil, fmt.Errorf("registering schema %s: %w", c.subject, err)
			}
		}

		codec, err := goavro.NewCodec(c.prototype.Schema())
		if err != nil {
			return nil, fmt.Errorf("creating codec for %s: %w", c.subject, err)
		}

		c.mu.Lock()
		c.schemaID = registered.ID()
		c.encoder = codec
		c.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return 0, nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schemaID, c.encoder, nil
}

func (c *ConfluentAvroCodec) reader(schemaID int) (avro.Schema, error) {
	c.mu.RLock()
	schema, found := c.readers[schemaID]
	c.mu.RUnlock()
	if found {
		return schema, nil
	}

	value, err, _ := c.registration.Do("id:"+strconv.Itoa(schemaID), func() (any, error) {
		registered, err := c.schemaRegistry.GetSchema(schemaID)
		if err != nil {
			return nil, fmt.Errorf("fetching schema %d: %w", schemaID, err)
		}
		return parseSchema(registered.Schema())
	})
	if err != nil {
		return nil, err
	}

	schema = value.(avro.Schema)
	c.mu.Lock()
	c.readers[schemaID] = schema
	c.mu.Unlock()
	return schema, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	message, ok := value.(Message)
	if !ok {
		return nil, fmt.Errorf("unsupported message type for avro encoding: %T", value)
	}

	schemaID, codec, err := c.writer()
	if err != nil {
		return nil, err
	}

	body, err := codec.BinaryFromNative(nil, message.Native())
	if err != nil {
		return nil, fmt.Errorf("encoding to avro: %w", err)
	}

	result := make([]byte, _headerLength+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerLength], uint32(schemaID))
	copy(result[_headerLength:], body)

	return result, nil
}

// Decode reads the body with the writer schema named in the header and
// returns a pointer to a new instance of the prototype type.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerLength {
		return nil, fmt.Errorf("invalid avro data: too short")
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}

	schema, err := c.reader(int(binary.BigEndian.Uint32(data[1:_headerLength])))
	if err != nil {
		return nil, err
	}

	instance := reflect.New(messageType(c.prototype)).Interface()
	if err := avro.Unmarshal(schema, data[_headerLength:], instance); err != nil {
		return nil, fmt.Errorf("decoding avro data: %w", err)
	}

	return instance, nil
}
