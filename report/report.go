package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/icodeforyou/tibberprice/chart"
	"github.com/icodeforyou/tibberprice/types"
)

type Options struct {
	Today    bool
	Tomorrow bool
	Plot     bool
	Summary  bool
	Chart    chart.Options
}

type Day struct {
	Name   string
	Prices []types.Price
}

// SelectDays shows today unless only tomorrow was asked for, and tomorrow
// whenever it was asked for. Both flags give both days.
func SelectDays(info types.PriceInfo, today, tomorrow bool) []Day {
	var days []Day
	if today || !tomorrow {
		days = append(days, Day{Name: "Today", Prices: info.Today})
	}
	if tomorrow {
		days = append(days, Day{Name: "Tomorrow", Prices: info.Tomorrow})
	}
	return days
}

// Print writes the current price followed by the selected days, as
// "startsAt : total" lines or as a chart.
func Print(w io.Writer, info types.PriceInfo, opts Options) {
	fmt.Fprintf(w, "Current price %s\n", formatPrice(info.Current.Total))

	for _, day := range SelectDays(info, opts.Today, opts.Tomorrow) {
		fmt.Fprintf(w, "\n%s\n", day.Name)

		if len(day.Prices) == 0 {
			fmt.Fprintln(w, "no prices available")
			continue
		}

		if opts.Plot {
			fmt.Fprintln(w, chart.Plot(totals(day.Prices), opts.Chart))
		} else {
			for _, p := range day.Prices {
				fmt.Fprintf(w, "%s : %s\n", p.StartsAt, formatPrice(p.Total))
			}
		}

		if opts.Summary {
			fmt.Fprintln(w, Summarize(day.Prices))
		}
	}
}

func totals(prices []types.Price) []float64 {
	values := make([]float64, len(prices))
	for i, p := range prices {
		values[i] = p.Total
	}
	return values
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
