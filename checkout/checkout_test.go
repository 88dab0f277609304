package checkout

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/f-coded/omotanwa-aesthetics-glow/cart"
	"github.com/f-coded/omotanwa-aesthetics-glow/catalog"
	"github.com/f-coded/omotanwa-aesthetics-glow/common"
	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

func validForm() Form {
	return Form{
		FullName:   "Ada Obi",
		Email:      "ada@example.com",
		Phone:      "08012345678",
		Address:    "12 Marina Road",
		City:       "Lagos",
		State:      "Lagos",
		ZipCode:    "100001",
		Country:    "Nigeria",
		CardName:   "Ada Obi",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/29",
		CVV:        "123",
	}
}

func filledCart() *cart.Store {
	s := cart.NewStore(uuid.New())
	s.AddToCart(catalog.Product{ID: "a", Name: "A", Price: decimal.NewFromInt(45)}, 2)
	s.AddToCart(catalog.Product{ID: "b", Name: "B", Price: decimal.NewFromInt(10)}, 1)
	return s
}

func fixedNumber() string { return "OMA-123456" }

func TestForm_Valid(t *testing.T) {
	assert.NoError(t, validForm().Validate())
}

func TestForm_Violations(t *testing.T) {
	f := validForm()
	f.FullName = "A"
	f.Email = "not-an-email"
	f.CardNumber = "4111"

	err := f.Validate()
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, common.StatusInvalidArgument, cmdErr.Code)
	assert.Equal(t, []common.FieldViolation{
		{Field: "fullName", Description: "Full name is required"},
		{Field: "email", Description: "Invalid email address"},
		{Field: "cardNumber", Description: "Card number is required"},
	}, cmdErr.Violations)
}

func TestForm_EmptyReportsEveryRequiredField(t *testing.T) {
	err := Form{}.Validate()
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Len(t, cmdErr.Violations, 11)
	assert.Equal(t, "fullName", cmdErr.Violations[0].Field)
	assert.Equal(t, "cvv", cmdErr.Violations[10].Field)
}

func TestNewQuote(t *testing.T) {
	q := NewQuote(decimal.NewFromInt(100))
	assert.True(t, q.Shipping.Equal(decimal.NewFromInt(10)))
	assert.True(t, q.Tax.Equal(decimal.NewFromInt(5)))
	assert.True(t, q.Total.Equal(decimal.NewFromInt(115)))

	empty := NewQuote(decimal.Zero)
	assert.True(t, empty.Shipping.IsZero())
	assert.True(t, empty.Total.IsZero())
}

func TestRandomOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^OMA-[1-9]\d{5}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, re, RandomOrderNumber())
	}
}

func TestSimulatedProcessor_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := SimulatedProcessor{Delay: time.Hour}.Process(ctx, &Order{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlaceOrder_Success(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(SimulatedProcessor{}, zap.NewNop(),
		WithNumberGenerator(fixedNumber),
		WithClock(func() time.Time { return created }),
	)
	c := filledCart()

	order, err := svc.PlaceOrder(context.Background(), c, pricing.RegionNGN, validForm())
	require.NoError(t, err)

	assert.Equal(t, "OMA-123456", order.Number)
	assert.NotEqual(t, uuid.Nil, order.ID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "a", order.Items[0].ProductID)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(115)))
	assert.Equal(t, PaymentPaid, order.PaymentStatus)
	assert.Equal(t, OrderProcessing, order.OrderStatus)
	assert.Equal(t, pricing.RegionNGN, order.Region)
	assert.Equal(t, "12 Marina Road", order.ShippingAddress.StreetAddress)
	assert.Equal(t, created, order.CreatedAt)
	assert.Equal(t, 0, c.ItemCount())
}

func TestPlaceOrder_InvalidFormLeavesCart(t *testing.T) {
	svc := NewService(SimulatedProcessor{}, zap.NewNop())
	c := filledCart()
	f := validForm()
	f.CVV = "1"

	_, err := svc.PlaceOrder(context.Background(), c, pricing.RegionUSA, f)
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "cvv", cmdErr.Violations[0].Field)
	assert.Equal(t, 3, c.ItemCount())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	svc := NewService(SimulatedProcessor{}, zap.NewNop())

	_, err := svc.PlaceOrder(context.Background(), cart.NewStore(uuid.New()), pricing.RegionUSA, validForm())
	var cmdErr *common.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, common.StatusFailedPrecondition, cmdErr.Code)
	assert.Equal(t, ErrMsgCartEmpty, cmdErr.Message)
}

func TestPlaceOrder_ProcessorFailureLeavesCart(t *testing.T) {
	declined := errors.New("card declined")
	svc := NewService(ProcessorFunc(func(context.Context, *Order) error { return declined }), zap.NewNop())
	c := filledCart()

	_, err := svc.PlaceOrder(context.Background(), c, pricing.RegionUSA, validForm())
	assert.ErrorIs(t, err, declined)
	assert.Contains(t, err.Error(), "payment processing failed")
	assert.Equal(t, 3, c.ItemCount())
}

func TestPlaceOrder_ProcessorFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	declined := errors.New("card declined")
	svc := NewService(ProcessorFunc(func(context.Context, *Order) error { return declined }), zap.New(core),
		WithNumberGenerator(fixedNumber))

	_, err := svc.PlaceOrder(context.Background(), filledCart(), pricing.RegionUSA, validForm())
	require.Error(t, err)

	entries := logs.FilterMessage("order processing failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, string(PaymentFailed), fields["payment_status"])
	assert.Equal(t, "OMA-123456", fields["order_number"])
}

func TestPlaceOrder_OrderIDsUniqueWhenNumbersRepeat(t *testing.T) {
	svc := NewService(SimulatedProcessor{}, zap.NewNop(), WithNumberGenerator(fixedNumber))

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		order, err := svc.PlaceOrder(context.Background(), filledCart(), pricing.RegionUSA, validForm())
		require.NoError(t, err)
		assert.Equal(t, "OMA-123456", order.Number)
		assert.False(t, seen[order.ID], "duplicate order ID %s", order.ID)
		seen[order.ID] = true
	}
}

func TestPlaceOrder_Cancelled(t *testing.T) {
	svc := NewService(SimulatedProcessor{Delay: time.Hour}, zap.NewNop())
	c := filledCart()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.PlaceOrder(ctx, c, pricing.RegionUSA, validForm())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 3, c.ItemCount())
}
