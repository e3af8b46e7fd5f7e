package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ PublisherFactory = (*MemoryPublisherFactory)(nil)

// MemoryPublisherFactory backs pubsub with an in-process broker for local runs
// and tests.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
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

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
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

// Consume registers handler and blocks until ctx is done, like the kafka
// consumer does.
func (c *MemoryConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, _ Prototype) error {
	id := c.broker.Subscribe(topic, c.group, handler)
	defer c.broker.Unsubscribe(topic, id)

	<-ctx.Done()
	return nil
}

// MemoryBroker delivers each message to one subscriber per consumer group.
type MemoryBroker struct {
	mu     sync.RWMutex
	topics map[Topic]map[string][]*memorySubscriber
	nextID int
	next   map[string]int
}

type memorySubscriber struct {
	id      int
	handler MessageHandler
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
	return &MemoryBroker{
		topics: make(map[Topic]map[string][]*memorySubscriber),
		next:   make(map[string]int),
	}
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	groups, ok := b.topics[topic]
	if !ok {
		groups = make(map[string][]*memorySubscriber)
		b.topics[topic] = groups
	}
	groups[group] = append(groups[group], &memorySubscriber{id: b.nextID, handler: handler})
	return b.nextID
}

func (b *MemoryBroker) Unsubscribe(topic Topic, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for group, subscribers := range b.topics[topic] {
		for i, s := range subscribers {
			if s.id == id {
				b.topics[topic][group] = append(subscribers[:i:i], subscribers[i+1:]...)
				return
			}
		}
	}
}

// Publish hands the message to the subscribers asynchronously. The trace of
// ctx travels with the message the same way it would through broker headers.
func (b *MemoryBroker) Publish(ctx context.Context, topic Topic, key Key, message Message) error {
	headers := InjectTrace(ctx)

	b.mu.Lock()
	receivers := make([]*memorySubscriber, 0)
	for group, subscribers := range b.topics[topic] {
		if len(subscribers) == 0 {
			continue
		}
		cursor := fmt.Sprintf("%s/%s", topic, group)
		receivers = append(receivers, subscribers[b.next[cursor]%len(subscribers)])
		b.next[cursor]++
	}
	b.mu.Unlock()

	for _, receiver := range receivers {
		go deliver(ExtractTrace(context.Background(), headers), receiver, topic, key, message)
	}

	return nil
}

func deliver(ctx context.Context, s *memorySubscriber, topic Topic, key Key, message Message) {
	ctx, span := StartConsumerSpan(ctx, topic, key)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in message handler", slog.String("topic", string(topic)), slog.Any("panic", r))
		}
	}()

	if err := s.handler(ctx, key, message); err != nil {
		span.RecordError(err)
		slog.Error("message handler failed",
			slog.String("topic", string(topic)),
			slog.String("key", string(key)),
			slog.String("error", err.Error()))
	}
}

// Reset drops every subscription.
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = make(map[Topic]map[string][]*memorySubscriber)
	b.next = make(map[string]int)
}
