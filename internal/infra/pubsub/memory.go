package pubsub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var ErrBufferFull = errors.New("topic channel buffer full")

const _memoryTopicBuffer = 100

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory(broker *MemoryBroker) *MemoryPublisherFactory {
	return &MemoryPublisherFactory{broker: broker}
}

func (f *MemoryPublisherFactory) New(topic Topic, _ Message) (Publisher, error) {
	return &MemoryPublisher{
		broker: f.broker,
		topic:  topic,
	}, nil
}

type MemoryPublisher struct {
	broker *MemoryBroker
	topic  Topic
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(ctx, p.topic, key, message)
}

var _ ConsumerFactory = (*MemoryConsumerFactory)(nil)

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(broker *MemoryBroker, group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: broker,
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	id := c.broker.Subscribe(topic, c.group, handler)
	go func() {
		<-ctx.Done()
		c.broker.Unsubscribe(topic, id)
	}()
	return nil
}

// MemoryBroker delivers every message once per consumer group, rotating over
// the group members.
type MemoryBroker struct {
	mu     sync.Mutex
	topics map[Topic]*memoryTopic
	nextID int
}

type memoryTopic struct {
	messages chan memoryEvent
	groups   map[string]*memoryGroup
}

type memoryGroup struct {
	consumers []*memoryConsumer
	next      int
}

type memoryConsumer struct {
	id      int
	handler MessageHandler
}

type memoryEvent struct {
	trace   TraceHeaders
	key     Key
	message Message
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = NewMemoryBroker()
	})
	return memoryBroker
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{topics: make(map[Topic]*memoryTopic)}
}

func (b *MemoryBroker) topic(name Topic) *memoryTopic {
	topic, exists := b.topics[name]
	if !exists {
		topic = &memoryTopic{
			messages: make(chan memoryEvent, _memoryTopicBuffer),
			groups:   make(map[string]*memoryGroup),
		}
		b.topics[name] = topic
	}
	return topic
}

func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	event := memoryEvent{
		trace:   ExtractTraceFromContext(ctx),
		key:     key,
		message: message,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.topic(topic)
	select {
	case t.messages <- event:
		go b.dispatch(t)
	default:
		return fmt.Errorf("%w: %s", ErrBufferFull, topic)
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	t := b.topic(topic)
	g, exists := t.groups[group]
	if !exists {
		g = &memoryGroup{}
		t.groups[group] = g
	}
	g.consumers = append(g.consumers, &memoryConsumer{id: b.nextID, handler: handler})

	return b.nextID
}

func (b *MemoryBroker) Unsubscribe(topic Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, exists := b.topics[topic]
	if !exists {
		return
	}
	for name, g := range t.groups {
		for i, consumer := range g.consumers {
			if consumer.id != id {
				continue
			}
			g.consumers = append(g.consumers[:i:i], g.consumers[i+1:]...)
			if len(g.consumers) == 0 {
				delete(t.groups, name)
			}
			return
		}
	}
}

func (b *MemoryBroker) dispatch(t *memoryTopic) {
	b.mu.Lock()
	var event memoryEvent
	select {
	case event = <-t.messages:
	default:
		b.mu.Unlock()
		return
	}
	handlers := make([]MessageHandler, 0, len(t.groups))
	for _, g := range t.groups {
		if len(g.consumers) == 0 {
			continue
		}
		g.next = g.next % len(g.consumers)
		handlers = append(handlers, g.consumers[g.next].handler)
		g.next++
	}
	b.mu.Unlock()

	ctx := InjectTraceIntoContext(context.Background(), event.trace)
	for _, handler := range handlers {
		b.handle(ctx, handler, event)
	}
}

func (b *MemoryBroker) handle(ctx context.Context, handler MessageHandler, event memoryEvent) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.Any("panic", r))
		}
	}()

	if err := handler(ctx, event.key, event.message); err != nil {
		slog.Error("error in message handler", slog.String("key", string(event.key)), slog.String("error", err.Error()))
	}
}

// Reset clears all topics and consumers
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = make(map[Topic]*memoryTopic)
}

// GetMessageCount returns the number of messages waiting in a topic buffer
func (b *MemoryBroker) GetMessageCount(topic Topic) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	t, exists := b.topics[topic]
	if !exists {
		return 0
	}

	return len(t.messages)
}
