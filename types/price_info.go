package types

import (
	"context"
	"time"

	"github.com/icodeforyou/tibberprice/hours"
	"github.com/icodeforyou/tibberprice/types/maybe"
)

type Price struct {
	Total    float64 // Energy + Tax, in the currency of the subscription per kWh
	Energy   float64
	Tax      float64
	StartsAt string // RFC3339 as delivered by the provider, e.g. "2025-01-01T00:00:00.000+01:00"
}

// Time returns StartsAt parsed, or the zero time if it isn't RFC3339.
func (p Price) Time() time.Time {
	return hours.FromIso(p.StartsAt)
}

type PriceInfo struct {
	Current  Price
	Today    []Price
	Tomorrow []Price
}

type PriceInfoProvider interface {
	GetPriceInfo(ctx context.Context) (maybe.Maybe[PriceInfo], error)
}
