// Package checkout turns a cart into an order: form validation, the order
// quote, and simulated payment processing.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart/logic"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

const ErrMsgCartEmpty = "Cart is empty"

// Cart is the part of the cart store checkout needs.
type Cart interface {
	Items() []logic.LineItem
	ClearCart()
}

// Option configures a Service.
type Option func(*Service)

// WithNumberGenerator overrides how order numbers are produced.
func WithNumberGenerator(gen NumberGenerator) Option {
	return func(s *Service) {
		s.numbers = gen
	}
}

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service places orders.
type Service struct {
	processor Processor
	numbers   NumberGenerator
	now       func() time.Time
	logger    *zap.Logger
}

// NewService creates a Service that charges through processor.
func NewService(processor Processor, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		processor: processor,
		numbers:   RandomOrderNumber,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder validates the form, snapshots the cart into an order and runs
// payment. The cart is cleared only when payment succeeds.
func (s *Service) PlaceOrder(ctx context.Context, cart Cart, region pricing.Region, form Form) (*Order, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	items := cart.Items()
	if err := common.RequireNotEmpty(items, ErrMsgCartEmpty); err != nil {
		return nil, err
	}

	order := s.newOrder(items, region, form)
	log := s.logger.With(
		zap.String("order_number", order.Number),
		zap.String("total", order.Total.StringFixed(2)),
		zap.Int("items", len(order.Items)),
	)
	log.Info("processing order")

	if err := s.processor.Process(ctx, order); err != nil {
		log.Warn("order processing failed",
			zap.String("payment_status", string(PaymentFailed)),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("payment processing failed: %w", err)
	}

	order.PaymentStatus = PaymentPaid
	order.OrderStatus = OrderProcessing
	cart.ClearCart()
	log.Info("order placed")
	return order, nil
}

func (s *Service) newOrder(items []logic.LineItem, region pricing.Region, form Form) *Order {
	orderItems := make([]OrderItem, len(items))
	for i, item := range items {
		orderItems[i] = OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
		}
	}
	quote := NewQuote(logic.Subtotal(items))
	return &Order{
		ID:       uuid.New(),
		Number:   s.numbers(),
		Items:    orderItems,
		Subtotal: quote.Subtotal,
		Shipping: quote.Shipping,
		Tax:      quote.Tax,
		Total:    quote.Total,
		ShippingAddress: Address{
			FullName:      form.FullName,
			StreetAddress: form.Address,
			City:          form.City,
			State:         form.State,
			ZipCode:       form.ZipCode,
			Country:       form.Country,
			Phone:         form.Phone,
		},
		Email:         form.Email,
		Region:        region,
		PaymentStatus: PaymentPending,
		OrderStatus:   OrderProcessing,
		CreatedAt:     s.now().UTC(),
	}
}
