package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
)

type projectCmd struct {
	country   string
	value     float64
	rent      float64
	expenses  float64
	equity    float64
	price     float64
	years     string
	inflation bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project value, rent and equity over future years" }
func (*projectCmd) Usage() string {
	return `tracker project -value <amount> [-rent|-expenses <amount>] [-equity <amount>] [-price <amount>] [-years 0,1,5,10] [-country <code>] [-real]

  Growth, selling costs and taxes come from the country settings. Rent and
  expenses are monthly amounts.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "country settings to use (defaults to the selected country)")
	f.Float64Var(&c.value, "value", 0, "current market value")
	f.Float64Var(&c.rent, "rent", 0, "monthly rent")
	f.Float64Var(&c.expenses, "expenses", 0, "monthly expenses")
	f.Float64Var(&c.equity, "equity", 0, "current net equity")
	f.Float64Var(&c.price, "price", 0, "purchase price, used for capital gains (defaults to -value)")
	f.StringVar(&c.years, "years", "", "comma-separated list of years ahead")
	f.BoolVar(&c.inflation, "real", false, "express amounts in today's money")
}

func (c *projectCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.value <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -value must be positive")
		return subcommands.ExitUsageError
	}

	years, err := parseYears(c.years)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing years: %v\n", err)
		return subcommands.ExitUsageError
	}

	price := c.price
	if price == 0 {
		price = c.value
	}

	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	settings, err := a.settings.ResolveCountry(ctx, c.country)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading country: %v\n", err)
		return subcommands.ExitUsageError
	}

	rows, err := a.calculator.Projection(ctx, request.ProjectionRequest{
		Years:             years,
		Country:           settings.Code,
		InflationAdjusted: c.inflation,
		CurrentValue:      c.value,
		MonthlyRent:       c.rent,
		MonthlyExpenses:   c.expenses,
		CurrentNetEquity:  c.equity,
		PurchasePrice:     price,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing projection: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(projectionMarkdown(rows, settings.Currency, c.inflation))
	return subcommands.ExitSuccess
}

// parseYears reads a comma-separated year list. An empty list means the
// default horizons.
func parseYears(value string) ([]int, error) {
	var years []int
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", part)
		}
		years = append(years, year)
	}
	return years, nil
}
