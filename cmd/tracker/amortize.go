package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/config"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
)

type amortizeCmd struct {
	principal float64
	rate      float64
	term      int
	elapsed   int
	schedule  bool
	currency  string
}

func (*amortizeCmd) Name() string     { return "amortize" }
func (*amortizeCmd) Synopsis() string { return "compute the payment and balance of a fixed-rate loan" }
func (*amortizeCmd) Usage() string {
	return `tracker amortize -principal <amount> -rate <percent> -term <months> [-elapsed <months>] [-schedule]

  Prints the monthly payment, the balance after the elapsed months and the
  total interest paid over the term.
`
}

func (c *amortizeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "loan principal in major units")
	f.Float64Var(&c.rate, "rate", 0, "yearly interest rate in percent")
	f.IntVar(&c.term, "term", 360, "loan term in months")
	f.IntVar(&c.elapsed, "elapsed", 0, "payments already made")
	f.BoolVar(&c.schedule, "schedule", false, "print the full monthly schedule")
	f.StringVar(&c.currency, "c", "", "display currency (defaults to DEFAULT_CURRENCY)")
}

func (c *amortizeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.principal <= 0 || c.term <= 0 {
		fmt.Fprintln(os.Stderr, "Error: principal and term must be positive")
		return subcommands.ExitUsageError
	}

	code, err := displayCurrency(c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	calculator := service.NewCalculatorService(nil, nil, 0)
	result := calculator.Amortization(request.AmortizationRequest{
		Principal:       c.principal,
		AnnualRate:      c.rate,
		TermMonths:      c.term,
		ElapsedMonths:   c.elapsed,
		IncludeSchedule: c.schedule,
	})

	printMarkdown(amortizationMarkdown(result, code))
	return subcommands.ExitSuccess
}

// displayCurrency returns code, or the configured default currency when empty.
func displayCurrency(code string) (string, error) {
	if code != "" {
		return code, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.Finance.DefaultCurrency, nil
}
