package async

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=internal_broker.go -destination=../../../test/unit/doubles/infra/async/internal_broker_mock.go -package=async -mock_names=InternalBroker=MockInternalBroker

type BrokerTopicName string

type BrokerMessage struct {
	Event string
	Value any
	Span  trace.Span
	Error error
}

type InternalBroker interface {
	Subscribe(topic BrokerTopicName) (Subscription, error)
	Unsubscribe(topic BrokerTopicName, subscription Subscription) error
	Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error
	Stop()
}

var _ InternalBroker = (*LocalBroker)(nil)

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubscriptorNotFound = errors.New("subscriptor not found")

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{
		topics: make(map[BrokerTopicName][]*subscriptor),
	}
}

// LocalBroker fans messages out to in-process subscribers. Receivers are
// never closed; Done is closed when the subscription ends.
type LocalBroker struct {
	mu     sync.RWMutex
	topics map[BrokerTopicName][]*subscriptor
}

type subscriptor struct {
	once         sync.Once
	done         chan struct{}
	subscription Subscription
}

type Subscription struct {
	ID       string
	Receiver chan BrokerMessage
	Done     <-chan struct{}
}

func (b *LocalBroker) Subscribe(topic BrokerTopicName) (Subscription, error) {
	done := make(chan struct{})
	subscription := Subscription{
		ID:       uuid.NewString(),
		Receiver: make(chan BrokerMessage),
		Done:     done,
	}

	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], &subscriptor{done: done, subscription: subscription})
	b.mu.Unlock()

	return subscription, nil
}

func (b *LocalBroker) Unsubscribe(topic BrokerTopicName, subscription Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscriptors, ok := b.topics[topic]
	if !ok {
		return ErrTopicNotFound
	}

	index := slices.IndexFunc(subscriptors, func(s *subscriptor) bool { return s.subscription.ID == subscription.ID })
	if index < 0 {
		return ErrSubscriptorNotFound
	}

	subscriptors[index].stop()
	b.topics[topic] = slices.Delete(slices.Clone(subscriptors), index, index+1)

	return nil
}

// Publish delivers msg asynchronously to every current subscriber of topic.
// Topics exist once somebody subscribed to them.
func (b *LocalBroker) Publish(ctx context.Context, topic BrokerTopicName, msg BrokerMessage) error {
	msg.Span = trace.SpanFromContext(ctx)

	b.mu.RLock()
	subscriptors, ok := b.topics[topic]
	b.mu.RUnlock()
	if !ok {
		return ErrTopicNotFound
	}

	for _, s := range subscriptors {
		go s.deliver(msg)
	}

	return nil
}

func (b *LocalBroker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, subscriptors := range b.topics {
		for _, s := range subscriptors {
			s.stop()
		}
		b.topics[topic] = nil
	}
}

func (s *subscriptor) deliver(msg BrokerMessage) {
	select {
	case s.subscription.Receiver <- msg:
	case <-s.done:
	}
}

func (s *subscriptor) stop() {
	s.once.Do(func() {
		close(s.done)
	})
}
