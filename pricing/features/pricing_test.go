package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/f-coded/omotanwa-aesthetics-glow/pricing"
)

type pricingTestContext struct {
	store  *pricing.Store
	parsed pricing.Region
	err    error
}

func (c *pricingTestContext) reset() {
	c.store = nil
	c.parsed = ""
	c.err = nil
}

func (c *pricingTestContext) aPricingStoreWithExchangeRate(rate string) error {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return err
	}
	c.store = pricing.NewStore(pricing.WithExchangeRate(r))
	return nil
}

func (c *pricingTestContext) iSetTheCountryTo(region string) error {
	c.store.SetCountry(pricing.Region(region))
	return nil
}

func (c *pricingTestContext) iParseTheRegion(input string) error {
	c.parsed, c.err = pricing.ParseRegion(input)
	return nil
}

func (c *pricingTestContext) theCountryIs(region string) error {
	if got := c.store.Country(); string(got) != region {
		return fmt.Errorf("expected country %s, got %s", region, got)
	}
	return nil
}

func (c *pricingTestContext) isFormattedAs(amount, formatted string) error {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	if got := c.store.FormatPrice(a); got != formatted {
		return fmt.Errorf("expected %s to format as %q, got %q", amount, formatted, got)
	}
	return nil
}

func (c *pricingTestContext) theParsedRegionIs(region string) error {
	if c.err != nil {
		return fmt.Errorf("expected region but got error: %v", c.err)
	}
	if string(c.parsed) != region {
		return fmt.Errorf("expected region %s, got %s", region, c.parsed)
	}
	return nil
}

func (c *pricingTestContext) parsingFailsWith(substring string) error {
	if c.err == nil {
		return errors.New("expected parsing to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), substring) {
		return fmt.Errorf("expected error message to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &pricingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a pricing store with exchange rate ([\d.]+)$`, tc.aPricingStoreWithExchangeRate)

	// When steps
	ctx.Step(`^I set the country to "([^"]*)"$`, tc.iSetTheCountryTo)
	ctx.Step(`^I parse the region "([^"]*)"$`, tc.iParseTheRegion)

	// Then steps
	ctx.Step(`^the country is "([^"]*)"$`, tc.theCountryIs)
	ctx.Step(`^([\d.]+) is formatted as "([^"]*)"$`, tc.isFormattedAs)
	ctx.Step(`^the parsed region is "([^"]*)"$`, tc.theParsedRegionIs)
	ctx.Step(`^parsing fails with "([^"]*)"$`, tc.parsingFailsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
