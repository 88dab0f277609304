package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestOpen_StartsEmptyInBaseRegion(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	s := r.Open()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, s.Cart.ItemCount())
	assert.Equal(t, pricing.RegionUSA, s.Pricing.Country())
	assert.Equal(t, common.CartRoot(s.ID), s.Cart.Root())
}

func TestOpen_SessionsAreIndependent(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	a, b := r.Open(), r.Open()

	a.Pricing.SetCountry(pricing.RegionNGN)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, pricing.RegionUSA, b.Pricing.Country())
}

func TestGet_Unknown(t *testing.T) {
	r := NewRegistry(zap.NewNop())

	_, err := r.Get(uuid.New())
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, common.StatusNotFound, cmdErr.Code)
}

func TestClose(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	s := r.Open()

	assert.True(t, r.Close(s.ID))
	assert.False(t, r.Close(s.ID))
	_, err := r.Get(s.ID)
	assert.Error(t, err)
}

func TestSweep_ExpiresIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(zap.NewNop(), WithClock(clock.Now))
	stale := r.Open()
	clock.Advance(20 * time.Minute)
	fresh := r.Open()
	clock.Advance(15 * time.Minute)

	assert.Equal(t, 1, r.Sweep(30*time.Minute))

	_, err := r.Get(stale.ID)
	assert.Error(t, err)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestGet_KeepsSessionAlive(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(zap.NewNop(), WithClock(clock.Now))
	s := r.Open()

	clock.Advance(25 * time.Minute)
	_, err := r.Get(s.ID)
	require.NoError(t, err)
	clock.Advance(25 * time.Minute)

	assert.Equal(t, 0, r.Sweep(30*time.Minute))
}

func TestRun_StopsOnCancel(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		r.Run(ctx, time.Millisecond, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRecordOrder(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	s := r.Open()

	s.RecordOrder(&checkout.Order{Number: "OMA-100001"})
	s.RecordOrder(&checkout.Order{Number: "OMA-100002"})

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "OMA-100001", orders[0].Number)
}
