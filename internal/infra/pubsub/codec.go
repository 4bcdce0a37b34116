package pubsub

import (
	"crm-server/internal/shared_kernel/avro"
	"encoding/json"
	"fmt"
	"reflect"
)

type Codec interface {
	Encode(value any) (data []byte, err error)
	Decode(data []byte) (value any, err error)
}

var (
	_ Codec = (*JSONCodec)(nil)
	_ Codec = (*avro.ConfluentAvroCodec)(nil)
	_ Codec = (*avro.AvroCodec)(nil)
)

func NewJSONCodec(prototype any) *JSONCodec {
	return &JSONCodec{prototype}
}

// JSONCodec decodes into a fresh value of the prototype type.
type JSONCodec struct {
	prototype any
}

func (c *JSONCodec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshaling data: %w", err)
	}

	return data, nil
}

func (c *JSONCodec) Decode(data []byte) (any, error) {
	pt := reflect.TypeOf(c.prototype)
	if pt == nil {
		var value any
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("unmarshaling data: %w", err)
		}
		return value, nil
	}

	instance := reflect.New(pt)
	if err := json.Unmarshal(data, instance.Interface()); err != nil {
		return nil, fmt.Errorf("unmarshaling data: %w", err)
	}

	return instance.Elem().Interface(), nil
}

// NewCodec picks the Confluent Avro codec when a schema registry is
// configured and JSON otherwise.
func NewCodec(topic Topic, prototype any, schemaRegistryURL string) (Codec, error) {
	if schemaRegistryURL == "" {
		return NewJSONCodec(prototype), nil
	}

	codec, err := avro.NewConfluentAvroCodec(string(topic), avro.NewSchemaRegistry(schemaRegistryURL))
	if err != nil {
		return nil, fmt.Errorf("creating Avro codec: %w", err)
	}
	return codec, nil
}
