package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const NoOfHours = 24

type Options struct {
	Width     int  // Columns for 00 to 24, rounded down to whole columns per hour
	Height    int  // Rows
	Precision uint // Decimals on y-axis labels
}

// Plot renders hourly values as a step chart with an hour axis caption
// underneath. Every hour gets the same number of columns so hour h starts at
// HourColumn(h) for 23, 24 and 25 hour days alike.
func Plot(values []float64, opts Options) string {
	if len(values) == 0 {
		return ""
	}

	plot := asciigraph.Plot(steps(values, columnsPerHour(opts.Width)),
		asciigraph.Height(opts.Height),
		asciigraph.Precision(opts.Precision))

	return plot + "\n" + strings.Repeat(" ", dataColumn(plot)) + HourAxis(opts.Width)
}

// steps repeats every value perHour times and closes the last hour with one
// more point, asciigraph draws a point per column when no width is given.
func steps(values []float64, perHour int) []float64 {
	series := make([]float64, 0, len(values)*perHour+1)
	for _, v := range values {
		for range perHour {
			series = append(series, v)
		}
	}
	return append(series, values[len(values)-1])
}

func columnsPerHour(width int) int {
	return max((width-2)/NoOfHours, 1)
}

// HourColumn is the column, relative to the first plotted column, where hour
// starts and where its label is drawn.
func HourColumn(hour, width int) int {
	return hour * columnsPerHour(width)
}

// HourAxis returns "00", "06", "12", "18" and "24" at their hour columns.
func HourAxis(width int) string {
	line := []byte(strings.Repeat(" ", HourColumn(NoOfHours, width)+2))
	for h := 0; h <= NoOfHours; h += 6 {
		copy(line[HourColumn(h, width):], fmt.Sprintf("%02d", h))
	}
	return strings.TrimRight(string(line), " ")
}

// dataColumn finds the first column after the y-axis. Labels are ascii so the
// byte index equals the column.
func dataColumn(plot string) int {
	first, _, _ := strings.Cut(plot, "\n")
	if i := strings.IndexAny(first, "┤┼"); i >= 0 {
		return i + 1
	}
	return 0
}
