package report

import (
	"fmt"

	"github.com/icodeforyou/tibberprice/hours"
	"github.com/icodeforyou/tibberprice/types"
	"github.com/shopspring/decimal"
)

type Summary struct {
	Lowest  types.Price
	Highest types.Price
	Average decimal.Decimal
}

// Summarize picks the first of equally priced hours. prices must not be empty.
func Summarize(prices []types.Price) Summary {
	s := Summary{Lowest: prices[0], Highest: prices[0]}
	sum := decimal.Zero
	for _, p := range prices {
		if p.Total < s.Lowest.Total {
			s.Lowest = p
		}
		if p.Total > s.Highest.Total {
			s.Highest = p
		}
		sum = sum.Add(decimal.NewFromFloat(p.Total))
	}
	s.Average = sum.Div(decimal.NewFromInt(int64(len(prices))))
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("Lowest %s at %s, highest %s at %s, average %s",
		decimal.NewFromFloat(s.Lowest.Total).StringFixed(4), hours.Clock(s.Lowest.Time()),
		decimal.NewFromFloat(s.Highest.Total).StringFixed(4), hours.Clock(s.Highest.Time()),
		s.Average.StringFixed(4))
}
