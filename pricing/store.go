package pricing

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultExchangeRate is the fixed number of naira per US dollar.
const DefaultExchangeRate = 1500

const errNilStore = "pricing: method called on nil *Store"

// Option configures a Store.
type Option func(*Store)

// WithRegion sets the initial region.
func WithRegion(r Region) Option {
	return func(s *Store) {
		s.region = r
	}
}

// WithExchangeRate overrides the naira rate. It cannot change afterwards.
func WithExchangeRate(rate decimal.Decimal) Option {
	return func(s *Store) {
		s.rate = rate
	}
}

// Store holds the active region and the fixed exchange rate.
type Store struct {
	mu     sync.RWMutex
	region Region
	rate   decimal.Decimal
}

// NewStore creates a store in the base region at DefaultExchangeRate.
func NewStore(opts ...Option) *Store {
	s := &Store{
		region: RegionUSA,
		rate:   decimal.NewFromInt(DefaultExchangeRate),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetCountry switches the region used by subsequent calls.
func (s *Store) SetCountry(r Region) {
	if s == nil {
		panic(errNilStore)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.region = r
}

// Country returns the active region.
func (s *Store) Country() Region {
	s.rlock()
	defer s.mu.RUnlock()
	return s.region
}

// ExchangeRate returns the naira per dollar rate.
func (s *Store) ExchangeRate() decimal.Decimal {
	s.rlock()
	defer s.mu.RUnlock()
	return s.rate
}

// Snapshot is a consistent read of a store's region and rate.
type Snapshot struct {
	Region Region
	Rate   decimal.Decimal
}

// Snapshot reads the region and rate under one lock so that values
// formatted from it agree with each other.
func (s *Store) Snapshot() Snapshot {
	s.rlock()
	defer s.mu.RUnlock()
	return Snapshot{Region: s.region, Rate: s.rate}
}

// Convert expresses a base currency amount in the active region's currency.
func (s *Store) Convert(amount decimal.Decimal) decimal.Decimal {
	return s.Snapshot().Convert(amount)
}

// FormatPrice renders a base currency amount for display: "$100.00" in the
// base region, "₦150,000" in NGN.
func (s *Store) FormatPrice(amount decimal.Decimal) string {
	return s.Snapshot().Format(amount)
}

// Convert expresses amount in the snapshot region's currency.
func (p Snapshot) Convert(amount decimal.Decimal) decimal.Decimal {
	return convert(p.Region, p.Rate, amount)
}

// Format renders amount for the snapshot region.
func (p Snapshot) Format(amount decimal.Decimal) string {
	return Format(p.Region, p.Rate, amount)
}

// Format renders amount for region at rate without a store.
func Format(region Region, rate, amount decimal.Decimal) string {
	converted := convert(region, rate, amount)
	if region == RegionNGN {
		return region.Symbol() + groupDigits(converted)
	}
	return region.Symbol() + converted.StringFixed(2)
}

func convert(region Region, rate, amount decimal.Decimal) decimal.Decimal {
	if region == RegionNGN {
		return amount.Mul(rate).Round(0)
	}
	return amount
}

// groupDigits renders a whole number with English locale thousands
// separators. Amounts outside int64 are grouped from their decimal digits.
func groupDigits(whole decimal.Decimal) string {
	n := whole.BigInt()
	if n.IsInt64() {
		return message.NewPrinter(language.English).Sprintf("%d", n.Int64())
	}

	digits := n.String()
	sign := ""
	if n.Sign() < 0 {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

func (s *Store) rlock() {
	if s == nil {
		panic(errNilStore)
	}
	s.mu.RLock()
}
