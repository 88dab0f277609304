// Package session keeps the per-shopper state a browser tab would hold: a
// cart, a region selection and the orders placed so far.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart"
	"github.com/f-coded/omotanwa-aesthetics-glow/checkout"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

const ErrMsgSessionNotFound = "Session not found"

// Session is one shopper's state.
type Session struct {
	ID        uuid.UUID
	Cart      *cart.Store
	Pricing   *pricing.Store
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	orders   []*checkout.Order
}

// Touch marks the session as active at t.
func (s *Session) Touch(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = t
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// RecordOrder appends a placed order to the session history.
func (s *Session) RecordOrder(o *checkout.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// Orders returns the placed orders, oldest first.
func (s *Session) Orders() []*checkout.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*checkout.Order(nil), s.orders...)
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the registry time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// WithCartOptions applies opts to every cart the registry creates.
func WithCartOptions(opts ...cart.Option) Option {
	return func(r *Registry) {
		r.cartOpts = append(r.cartOpts, opts...)
	}
}

// WithPricingOptions applies opts to every pricing store the registry creates.
func WithPricingOptions(opts ...pricing.Option) Option {
	return func(r *Registry) {
		r.pricingOpts = append(r.pricingOpts, opts...)
	}
}

// Registry owns the open sessions.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	now         func() time.Time
	cartOpts    []cart.Option
	pricingOpts []pricing.Option
	logger      *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger, opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open starts a session with an empty cart in the base region.
func (r *Registry) Open() *Session {
	id := uuid.New()
	now := r.now()
	s := &Session{
		ID:        id,
		Cart:      cart.NewStore(common.CartRoot(id), r.cartOpts...),
		Pricing:   pricing.NewStore(r.pricingOpts...),
		CreatedAt: now,
		lastSeen:  now,
	}

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	r.logger.Debug("session opened", zap.String("session_id", id.String()))
	return s
}

// Get returns the session and marks it as active.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, common.NewNotFound(ErrMsgSessionNotFound)
	}
	s.Touch(r.now())
	return s, nil
}

// Close discards a session. It reports whether the session existed.
func (r *Registry) Close(id uuid.UUID) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		r.logger.Debug("session closed", zap.String("session_id", id.String()))
	}
	return ok
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than idle and returns how many
// were closed.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	expired := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			expired++
		}
	}
	r.mu.Unlock()

	if expired > 0 {
		r.logger.Info("expired idle sessions", zap.Int("count", expired))
	}
	return expired
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(idle)
		}
	}
}
