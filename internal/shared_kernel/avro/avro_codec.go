package avro

import (
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
)

var ErrUnsupportedMessage = errors.New("unsupported message type")

// AvroCodec encodes record changes with the embedded schema. It carries no
// schema id and suits in-process transports and tests.
type AvroCodec struct {
	schema avro.Schema
}

func NewAvroCodec() (*AvroCodec, error) {
	schema, err := avro.Parse(recordChangeSchema)
	if err != nil {
		return nil, fmt.Errorf("parsing record change schema: %w", err)
	}
	return &AvroCodec{schema: schema}, nil
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	change, err := asRecordChange(value)
	if err != nil {
		return nil, err
	}

	data, err := avro.Marshal(c.schema, ToAvroRecordChange(change))
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}
	return data, nil
}

// Decode returns a domain.RecordChange.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	var message AvroRecordChange
	if err := avro.Unmarshal(c.schema, data, &message); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}
	return message.ToDomain(), nil
}
