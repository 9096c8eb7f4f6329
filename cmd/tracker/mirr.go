package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/service"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/validation"
)

type mirrCmd struct {
	financeRate  float64
	reinvestRate float64
}

func (*mirrCmd) Name() string     { return "mirr" }
func (*mirrCmd) Synopsis() string { return "compute the MIRR of a monthly cash-flow series" }
func (*mirrCmd) Usage() string {
	return `tracker mirr [-finance <percent>] [-reinvest <percent>] -- <flow0> <flow1> ...

  Cash flows are monthly and in chronological order; the first one is the
  initial outlay and is usually negative, hence the "--" before the list.
  Rates are monthly percentages.
`
}

func (c *mirrCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.financeRate, "finance", 0, "monthly finance rate in percent")
	f.Float64Var(&c.reinvestRate, "reinvest", 0, "monthly reinvestment rate in percent")
}

func (c *mirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	flows, err := parseFloats(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cash flows: %v\n", err)
		return subcommands.ExitUsageError
	}

	req := request.MIRRRequest{
		CashFlows:    flows,
		FinanceRate:  c.financeRate,
		ReinvestRate: c.reinvestRate,
	}
	if err := validation.ValidateMIRRRequest(req); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	calculator := service.NewCalculatorService(nil, nil, 0)
	summary := calculator.MIRR(req)

	printMarkdown(mirrMarkdown(summary))
	return subcommands.ExitSuccess
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
