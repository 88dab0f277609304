package checkout

import (
	"context"
	"time"
)

// DefaultProcessingDelay is how long SimulatedProcessor takes per order.
const DefaultProcessingDelay = 2 * time.Second

// Processor takes payment for an order.
type Processor interface {
	Process(ctx context.Context, order *Order) error
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, order *Order) error

func (f ProcessorFunc) Process(ctx context.Context, order *Order) error {
	return f(ctx, order)
}

// SimulatedProcessor accepts every order after Delay. No payment is taken.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p SimulatedProcessor) Process(ctx context.Context, _ *Order) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
