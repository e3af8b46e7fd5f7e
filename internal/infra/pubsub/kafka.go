package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tagback-server/internal/shared_kernel/avro"

	"github.com/lovoo/goka"
	"github.com/riferrei/srclient"
)

const (
	maxRetries    int = 10
	retryInterval     = 5 * time.Second
)

type publisherKey struct {
	brokers       string
	topic         string
	prototypeType string
}

type publisherInstance struct {
	publisher *SimpleKafkaPublisher
	once      sync.Once
	err       error
}

// Publishers are process wide singletons per broker list, topic and
// prototype.
var (
	publishersMap   = make(map[publisherKey]*publisherInstance)
	publishersMutex sync.Mutex
)

// newCodec picks the wire format for a prototype: confluent framed avro when a
// registry is configured, plain avro otherwise, and JSON for anything that has
// no avro schema.
func newCodec(prototype any, schemaRegistryURL string) (goka.Codec, error) {
	message, ok := prototype.(avro.Message)
	if !ok {
		return newJSONCodec(prototype), nil
	}

	if schemaRegistryURL != "" {
		return avro.NewConfluentAvroCodec(message, srclient.CreateSchemaRegistryClient(schemaRegistryURL)), nil
	}

	codec, err := avro.NewAvroCodec(message)
	if err != nil {
		return nil, fmt.Errorf("creating avro codec: %w", err)
	}
	return codec, nil
}

func NewKafkaPublisher(brokers []string, topic string, prototype any, schemaRegistryURL string) (*SimpleKafkaPublisher, error) {
	key := publisherKey{
		brokers:       strings.Join(brokers, ","),
		topic:         topic,
		prototypeType: fmt.Sprintf("%T", prototype),
	}

	publishersMutex.Lock()
	instance, exists := publishersMap[key]
	if !exists {
		instance = &publisherInstance{}
		publishersMap[key] = instance
	}
	publishersMutex.Unlock()

	instance.once.Do(func() {
		slog.Debug("creating kafka publisher",
			slog.String("topic", topic),
			slog.String("prototypeType", key.prototypeType))

		codec, err := newCodec(prototype, schemaRegistryURL)
		if err != nil {
			instance.err = err
			return
		}

		for try := 0; try < maxRetries; try++ {
			e, err := goka.NewEmitter(brokers, goka.Stream(topic), codec)
			if err == nil {
				instance.publisher = &SimpleKafkaPublisher{emitter: e, topic: topic}
				return
			}

			slog.Warn("connecting to kafka brokers",
				slog.String("brokers", key.brokers),
				slog.Int("try", try+1),
				slog.String("error", err.Error()))
			time.Sleep(retryInterval)
		}

		instance.err = fmt.Errorf("imposible to connect to kafka brokers after %d retries", maxRetries)
	})

	if instance.err != nil {
		return nil, instance.err
	}

	return instance.publisher, nil
}

var _ Publisher = (*SimpleKafkaPublisher)(nil)

type SimpleKafkaPublisher struct {
	emitter *goka.Emitter
	topic   string
}

func (p *SimpleKafkaPublisher) Publish(_ context.Context, key Key, message Message) error {
	if err := p.emitter.EmitSync(string(key), message); err != nil {
		slog.Error("emitting message",
			slog.String("topic", p.topic),
			slog.String("key", string(key)),
			slog.String("error", err.Error()))
		return fmt.Errorf("emitting to %s: %w", p.topic, err)
	}

	return nil
}

func (p *SimpleKafkaPublisher) Close() error {
	return p.emitter.Finish()
}

var _ Consumer = (*SimpleKafkaConsumer)(nil)

type SimpleKafkaConsumer struct {
	brokers           []string
	group             goka.Group
	schemaRegistryURL string
}

func NewKafkaConsumer(brokers []string, group string, schemaRegistryURL string) *SimpleKafkaConsumer {
	return &SimpleKafkaConsumer{
		brokers:           brokers,
		group:             goka.Group(group),
		schemaRegistryURL: schemaRegistryURL,
	}
}

// Consume runs a goka processor for topic until ctx is cancelled.
func (c *SimpleKafkaConsumer) Consume(ctx context.Context, topic Topic, handler MessageHandler, prototype Prototype) error {
	codec, err := newCodec(prototype, c.schemaRegistryURL)
	if err != nil {
		return err
	}

	cb := func(gctx goka.Context, msg any) {
		spanCtx, span := StartConsumerSpan(gctx.Context(), topic, Key(gctx.Key()))
		defer span.End()

		if err := handler(spanCtx, Key(gctx.Key()), msg); err != nil {
			span.RecordError(err)
			slog.Error("handling kafka message",
				slog.String("topic", string(topic)),
				slog.String("key", gctx.Key()),
				slog.String("error", err.Error()))
		}
	}

	group := goka.DefineGroup(
		goka.Group(fmt.Sprintf("%s-%s", c.group, topic)),
		goka.Input(goka.Stream(topic), codec, cb),
	)
	processor, err := goka.NewProcessor(c.brokers, group)
	if err != nil {
		return fmt.Errorf("creating processor for %s: %w", topic, err)
	}

	return processor.Run(ctx)
}
