package redis

import (
	"context"
	"log/slog"

	"github.com/wensjes/registry/internal/storage"
)

// SubscribePersons delivers the owner's current person set immediately,
// then re-queries and re-delivers it on every change notification from any
// process. Delivery runs on one goroutine per subscription, so callbacks
// for a single subscriber never run concurrently.
func (s *RedisStore) SubscribePersons(ctx context.Context, ownerID string, fn storage.PersonsSnapshotFunc) (storage.CancelFunc, error) {
	persons, err := s.ListPersonsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	fn(persons)

	return s.watch(ctx, personsChannel(ownerID), func(ctx context.Context) {
		persons, err := s.ListPersonsByOwner(ctx, ownerID)
		if err != nil {
			slog.Warn("person snapshot re-query failed", "owner_id", ownerID, "error", err)
			return
		}
		fn(persons)
	})
}

// SubscribeItems delivers the person's current item set immediately, then
// re-queries and re-delivers it on every change notification.
func (s *RedisStore) SubscribeItems(ctx context.Context, personID string, fn storage.ItemsSnapshotFunc) (storage.CancelFunc, error) {
	items, err := s.ListItems(ctx, personID)
	if err != nil {
		return nil, err
	}
	fn(items)

	return s.watch(ctx, itemsChannel(personID), func(ctx context.Context) {
		items, err := s.ListItems(ctx, personID)
		if err != nil {
			slog.Warn("item snapshot re-query failed", "person_id", personID, "error", err)
			return
		}
		fn(items)
	})
}

// watch runs redeliver on every message published to channel. The returned
// cancel closes the pub/sub connection and blocks until the delivery
// goroutine has exited, so no callback runs after cancel returns.
func (s *RedisStore) watch(ctx context.Context, channel string, redeliver func(context.Context)) (storage.CancelFunc, error) {
	pubsub := s.rdb.Subscribe(ctx, channel)
	// Force the subscription onto the wire before returning, so changes
	// written after Subscribe returns are never missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range pubsub.Channel() {
			redeliver(context.Background())
		}
	}()

	return func() {
		pubsub.Close()
		<-done
	}, nil
}
