package service

import (
	"context"
	"testing"
	"time"

	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSessions int

func (f fixedSessions) Count() int { return int(f) }

func newTestBus(t *testing.T) *gochannel.GoChannel {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return pubSub
}

func TestStatsService_CountsChatEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	stats := NewStatsService(bus, "chat.answered", NewCacheCounter(), fixedSessions(3), logger.NewNopLogger())
	require.NoError(t, stats.Consume(ctx))

	publisher := NewPublisherService("chat.answered", bus)
	for _, e := range []events.ChatAnswered{
		{Category: "coupon_request", StoreID: "amazon"},
		{Category: "coupon_request", StoreID: "amazon", Degraded: true},
		{Category: "greeting"},
	} {
		e.OccurredAt = time.Now()
		require.NoError(t, publisher.Publish(ctx, e))
	}

	assert.Eventually(t, func() bool {
		res, err := stats.Stats(ctx)
		return err == nil && res.Total == 3
	}, time.Second, 10*time.Millisecond)

	res, err := stats.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Degraded)
	assert.Equal(t, int64(2), res.Categories["coupon_request"])
	assert.Equal(t, int64(1), res.Categories["greeting"])
	assert.Equal(t, int64(2), res.Stores["amazon"])
	assert.Equal(t, 3, res.ActiveSessions)
	assert.Equal(t, "memory", res.Backend)
}

func TestStatsService_IgnoresGarbage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := newTestBus(t)
	stats := NewStatsService(bus, "chat.answered", NewCacheCounter(), nil, logger.NewNopLogger())
	require.NoError(t, stats.Consume(ctx))

	require.NoError(t, bus.Publish("chat.answered", message.NewMessage(watermill.NewUUID(), []byte("not json"))))
	require.NoError(t, NewPublisherService("chat.answered", bus).Publish(ctx, events.BaseEvent{Type: "other", OccurredAt: time.Now()}))
	require.NoError(t, NewPublisherService("chat.answered", bus).Publish(ctx, events.ChatAnswered{Category: "thanks", OccurredAt: time.Now()}))

	assert.Eventually(t, func() bool {
		res, err := stats.Stats(ctx)
		return err == nil && res.Total == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCacheCounter(t *testing.T) {
	c := NewCacheCounter()
	ctx := context.Background()

	require.NoError(t, c.Incr(ctx, "total"))
	require.NoError(t, c.Incr(ctx, "total"))
	require.NoError(t, c.Incr(ctx, "category:greeting"))

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), all["total"])

	categories, stores := splitCounters(all)
	assert.Equal(t, map[string]int64{"greeting": 1}, categories)
	assert.Empty(t, stores)
}
