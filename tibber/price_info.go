package tibber

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/icodeforyou/tibberprice/types"
	"github.com/icodeforyou/tibberprice/types/maybe"
)

const priceInfoQuery = `{
  viewer {
    homes {
      currentSubscription {
        priceInfo {
          current { total energy tax startsAt }
          today { total energy tax startsAt }
          tomorrow { total energy tax startsAt }
        }
      }
    }
  }
}`

type price struct {
	Total    float64  `json:"total"`
	Energy   float64  `json:"energy"`
	Tax      *float64 `json:"tax"`
	StartsAt string   `json:"startsAt"`
}

type priceInfo struct {
	Current  price   `json:"current"`
	Today    []price `json:"today"`
	Tomorrow []price `json:"tomorrow"`
}

type subscription struct {
	PriceInfo priceInfo `json:"priceInfo"`
}

type home struct {
	CurrentSubscription subscription `json:"currentSubscription"`
}

type priceViewer struct {
	Homes []home `json:"homes"`
}

// GetPriceInfo fetches current, today and tomorrow prices for the first home.
// Transport failures and non 200 responses are returned as errors, a response
// of unexpected shape is logged and gives None.
func (t *Tibber) GetPriceInfo(ctx context.Context) (maybe.Maybe[types.PriceInfo], error) {
	body, err := t.doQuery(ctx, priceInfoQuery)
	if err != nil {
		return maybe.None[types.PriceInfo](), err
	}

	viewer, err := decodePriceViewer(body)
	if err != nil {
		t.logParseFailure(err, body)
		return maybe.None[types.PriceInfo](), nil
	}

	if len(viewer.Homes) == 0 {
		t.logger.Warn("no homes found for this tibber account")
		return maybe.None[types.PriceInfo](), nil
	}
	if len(viewer.Homes) > 1 {
		t.logger.Debug("using the first home", slog.Int("homes", len(viewer.Homes)))
	}

	return maybe.Some(viewer.Homes[0].CurrentSubscription.PriceInfo.toPriceInfo()), nil
}

func decodePriceViewer(body []byte) (*priceViewer, error) {
	if err := requirePriceViewer(body); err != nil {
		return nil, err
	}

	res := new(queryResponse[priceViewer])
	if err := json.Unmarshal(body, res); err != nil {
		return nil, fmt.Errorf("failed to decode price info: %w", err)
	}
	return &res.Data.Viewer, nil
}

func (pi priceInfo) toPriceInfo() types.PriceInfo {
	return types.PriceInfo{
		Current:  pi.Current.toPrice(),
		Today:    toPrices(pi.Today),
		Tomorrow: toPrices(pi.Tomorrow),
	}
}

func (p price) toPrice() types.Price {
	var tax float64
	if p.Tax != nil {
		tax = *p.Tax
	}
	return types.Price{Total: p.Total, Energy: p.Energy, Tax: tax, StartsAt: p.StartsAt}
}

func toPrices(raw []price) []types.Price {
	prices := make([]types.Price, 0, len(raw))
	for _, p := range raw {
		prices = append(prices, p.toPrice())
	}
	return prices
}
