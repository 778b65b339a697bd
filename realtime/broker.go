// Package realtime turns store change notifications into live collection
// snapshots. A subscription is an explicit handle: it is acquired with
// Subscribe and must be released with Close, so teardown happens on every
// exit path instead of relying on garbage collection. On each relevant
// change the owning collection is re-queried and the full snapshot replaces
// the previous one; subscribers never receive partial patches.
package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

const (
	TopicRentals = "rentals"
	TopicGames   = "games"
)

// SnapshotFunc loads the full filtered collection for a subscription key
// (the owner or participant email) and returns it serialized.
type SnapshotFunc func(ctx context.Context, key string) ([]byte, error)

type subKey struct {
	topic string
	key   string
}

type Broker struct {
	mu      sync.Mutex
	sources map[string]SnapshotFunc
	subs    map[subKey]map[*Subscription]struct{}
	logger  *slog.Logger
}

func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		sources: map[string]SnapshotFunc{},
		subs:    map[subKey]map[*Subscription]struct{}{},
		logger:  logger,
	}
}

// Register binds a topic to its snapshot loader. Must happen before any
// Subscribe on that topic.
func (b *Broker) Register(topic string, load SnapshotFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sources[topic] = load
}

// Subscribe acquires a live view of the topic's collection filtered by key.
// The first snapshot is delivered before Subscribe returns, so the consumer
// leaves the "empty, loading" state immediately.
func (b *Broker) Subscribe(ctx context.Context, topic, key string) (*Subscription, error) {
	b.mu.Lock()
	load, ok := b.sources[topic]
	b.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("unknown topic '%v'", topic)
	}

	snapshot, err := load(ctx, key)

	if err != nil {
		return nil, fmt.Errorf("failed to load initial snapshot: %w", err)
	}

	sub := &Subscription{
		snapshots: make(chan []byte, 1),
		errs:      make(chan error, 1),
	}
	sub.snapshots <- snapshot

	sk := subKey{topic: topic, key: key}

	b.mu.Lock()
	if b.subs[sk] == nil {
		b.subs[sk] = map[*Subscription]struct{}{}
	}
	b.subs[sk][sub] = struct{}{}
	b.mu.Unlock()

	sub.release = func() { b.remove(sk, sub) }

	return sub, nil
}

func (b *Broker) remove(sk subKey, sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if set, ok := b.subs[sk]; ok {
		delete(set, sub)

		if len(set) == 0 {
			delete(b.subs, sk)
		}
	}
}

// Dispatch reloads and republishes the snapshot for every subscription
// matching topic and key. A loader failure terminates the affected
// subscriptions with an explicit error instead of leaving a stale view.
func (b *Broker) Dispatch(ctx context.Context, topic, key string) {
	b.mu.Lock()
	load, ok := b.sources[topic]
	targets := make([]*Subscription, 0)

	for sub := range b.subs[subKey{topic: topic, key: key}] {
		targets = append(targets, sub)
	}
	b.mu.Unlock()

	if !ok || len(targets) == 0 {
		return
	}

	snapshot, err := load(ctx, key)

	if err != nil {
		b.logger.Error("snapshot reload failed", "topic", topic, "key", key, "err", err)

		for _, sub := range targets {
			sub.fail(err)
		}

		return
	}

	for _, sub := range targets {
		sub.publish(snapshot)
	}
}

// FailAll terminates every open subscription with err. Called when change
// delivery itself is lost, so no consumer keeps watching a frozen view.
func (b *Broker) FailAll(err error) {
	b.mu.Lock()
	targets := make([]*Subscription, 0)

	for _, set := range b.subs {
		for sub := range set {
			targets = append(targets, sub)
		}
	}
	b.mu.Unlock()

	for _, sub := range targets {
		sub.fail(err)
	}
}

// Subscription is a scoped handle on a live collection view.
type Subscription struct {
	mu        sync.Mutex
	snapshots chan []byte
	errs      chan error
	release   func()
	closed    bool
}

// Snapshots yields full-collection replacements. A slow consumer only ever
// sees the latest snapshot; intermediate ones are dropped.
func (s *Subscription) Snapshots() <-chan []byte {
	return s.snapshots
}

// Errors yields at most one terminal error, after which no further snapshots
// arrive.
func (s *Subscription) Errors() <-chan error {
	return s.errs
}

// Close releases the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true

	if s.release != nil {
		s.release()
	}
}

func (s *Subscription) publish(snapshot []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	// Replace a pending, now stale snapshot rather than blocking.
	select {
	case <-s.snapshots:
	default:
	}

	s.snapshots <- snapshot
}

func (s *Subscription) fail(err error) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	select {
	case s.errs <- err:
	default:
	}

	s.mu.Unlock()

	s.Close()
}
