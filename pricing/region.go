// Package pricing holds the session's active region and formats base
// currency prices for display.
package pricing

import (
	"strings"

	"github.com/f-coded/omotanwa-aesthetics-glow/common"
)

// Region is a supported display region.
type Region string

const (
	// RegionUSA is the base region. Catalog prices are in US dollars.
	RegionUSA Region = "USA"
	// RegionNGN displays prices converted to Nigerian naira.
	RegionNGN Region = "NGN"
)

const ErrMsgUnknownRegion = "Unsupported region"

// Regions lists the supported regions, base region first.
var Regions = []Region{RegionUSA, RegionNGN}

// Symbol returns the currency symbol used for the region.
func (r Region) Symbol() string {
	if r == RegionNGN {
		return "₦"
	}
	return "$"
}

// Currency returns the ISO 4217 code of the region's currency.
func (r Region) Currency() string {
	if r == RegionNGN {
		return "NGN"
	}
	return "USD"
}

// ParseRegion accepts region codes and country names, case-insensitively.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "usa", "us", "united states":
		return RegionUSA, nil
	case "ngn", "ng", "nigeria":
		return RegionNGN, nil
	default:
		return "", common.NewInvalidArgumentf("%s: %q", ErrMsgUnknownRegion, s)
	}
}
