package avro

import (
	"context"
	"crm-server/internal/infra/cache"
	"crm-server/internal/shared_kernel/domain"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute

	_magicByte    byte = 0
	_headerLength      = 5
)

var ErrInvalidWireFormat = errors.New("invalid confluent wire format")

// SchemaRegistry is the subset of srclient.ISchemaRegistryClient the codec uses.
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

func NewSchemaRegistry(url string) SchemaRegistry {
	return srclient.CreateSchemaRegistryClient(url)
}

// ConfluentAvroCodec writes the Confluent wire format: a zero magic byte, the
// big endian schema id and the Avro binary body.
type ConfluentAvroCodec struct {
	schemaRegistry SchemaRegistry
	subject        string
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

// NewConfluentAvroCodec registers record changes under "<topic>-value".
func NewConfluentAvroCodec(topic string, schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	schemaCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}
	codecCache, err := cache.New(cache.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		schemaRegistry: schemaRegistry,
		subject:        topic + "-value",
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

func (c *ConfluentAvroCodec) getOrRegisterSchemaID(ctx context.Context) (int, error) {
	if cached, found := c.schemaCache.Get(ctx, c.subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(c.subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, c.subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	created, err := c.schemaRegistry.CreateSchema(c.subject, recordChangeSchema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, c.subject, created.ID(), _defaultSchemaCacheTTL)
	return created.ID(), nil
}

func (c *ConfluentAvroCodec) getCodecByID(ctx context.Context, schemaID int) (*goavro.Codec, error) {
	key := fmt.Sprintf("schema_%d", schemaID)
	if cached, found := c.codecCache.Get(ctx, key); found {
		if codec, ok := cached.(*goavro.Codec); ok {
			return codec, nil
		}
	}

	schema, err := c.schemaRegistry.GetSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}
	codec, err := goavro.NewCodec(schema.Schema())
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}

	c.codecCache.Set(ctx, key, codec, _defaultCodecCacheTTL)
	return codec, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	change, err := asRecordChange(value)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	schemaID, err := c.getOrRegisterSchemaID(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}
	codec, err := c.getCodecByID(ctx, schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	body, err := codec.BinaryFromNative(nil, toNative(change))
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, _headerLength+len(body))
	result[0] = _magicByte
	binary.BigEndian.PutUint32(result[1:_headerLength], uint32(schemaID))
	copy(result[_headerLength:], body)

	return result, nil
}

// Decode returns a domain.RecordChange.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _headerLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidWireFormat, len(data))
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("%w: magic byte %d", ErrInvalidWireFormat, data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:_headerLength]))

	codec, err := c.getCodecByID(context.Background(), schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[_headerLength:])
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}
	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedMessage, native)
	}

	return fromNative(record), nil
}

func toNative(change domain.RecordChange) map[string]any {
	message := ToAvroRecordChange(change)
	return map[string]any{
		"id":             message.ID,
		"entity_type":    message.EntityType,
		"record_id":      message.RecordID,
		"owner_id":       message.OwnerID,
		"action":         message.Action,
		"previous_stage": nullableString(message.PreviousStage),
		"stage":          nullableString(message.Stage),
		"occurred_at":    message.OccurredAt,
	}
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return goavro.Union("string", *value)
}

func fromNative(record map[string]any) domain.RecordChange {
	message := AvroRecordChange{
		ID:            getString(record, "id"),
		EntityType:    getString(record, "entity_type"),
		RecordID:      getString(record, "record_id"),
		OwnerID:       getString(record, "owner_id"),
		Action:        getString(record, "action"),
		PreviousStage: getUnionString(record, "previous_stage"),
		Stage:         getUnionString(record, "stage"),
	}
	if occurredAt, ok := record["occurred_at"].(time.Time); ok {
		message.OccurredAt = occurredAt
	}
	return message.ToDomain()
}

func getString(m map[string]any, key string) string {
	if value, ok := m[key].(string); ok {
		return value
	}
	return ""
}

// goavro decodes a non null union branch as a single entry map keyed by type.
func getUnionString(m map[string]any, key string) *string {
	switch v := m[key].(type) {
	case map[string]any:
		if s, ok := v["string"].(string); ok {
			return &s
		}
	case string:
		return &v
	}
	return nil
}
