package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
)

type roiCmd struct {
	price    float64
	value    float64
	date     string
	year     int
	rent     float64
	expenses float64
	mortgage float64
	country  string
}

func (*roiCmd) Name() string     { return "roi" }
func (*roiCmd) Synopsis() string { return "compute nominal, real and total return of a purchase" }
func (*roiCmd) Usage() string {
	return `tracker roi -price <amount> -value <amount> -date <YYYY-MM-DD> [-year <year>] [-rent|-expenses|-mortgage <amount>]

  Real appreciation uses the stored inflation table. Rent, expenses and
  mortgage are monthly amounts and feed the total return.
`
}

func (c *roiCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "purchase price")
	f.Float64Var(&c.value, "value", 0, "current market value")
	f.StringVar(&c.date, "date", "", "purchase date (YYYY-MM-DD)")
	f.IntVar(&c.year, "year", 0, "evaluation year (defaults to EVALUATION_YEAR)")
	f.Float64Var(&c.rent, "rent", 0, "monthly rent")
	f.Float64Var(&c.expenses, "expenses", 0, "monthly expenses")
	f.Float64Var(&c.mortgage, "mortgage", 0, "monthly mortgage payment")
	f.StringVar(&c.country, "country", "", "country whose currency is displayed (defaults to the selected country)")
}

func (c *roiCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.price <= 0 || c.date == "" {
		fmt.Fprintln(os.Stderr, "Error: -price and -date are required")
		return subcommands.ExitUsageError
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

	base := request.ROIRequest{
		PurchasePrice: c.price,
		CurrentValue:  c.value,
		PurchaseDate:  c.date,
		CurrentYear:   c.year,
	}

	appreciation, err := a.calculator.RealAppreciation(ctx, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing real appreciation: %v\n", err)
		return subcommands.ExitUsageError
	}

	roi, err := a.calculator.TrueROI(request.TrueROIRequest{
		ROIRequest:      base,
		MonthlyRent:     c.rent,
		MonthlyExpenses: c.expenses,
		MonthlyMortgage: c.mortgage,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing total return: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(roiMarkdown(appreciation, roi, settings.Currency))
	return subcommands.ExitSuccess
}
