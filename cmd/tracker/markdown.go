package main

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/finance"
	"github.com/ndewijer/Real-Estate-Tracker-Backend/internal/model"
)

func formatMoney(amount float64, code string) string {
	return currency.Format(currency.FromMajor(amount), code, false)
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func stars(n int) string {
	return strings.Repeat("★", n) + strings.Repeat("☆", max(finance.MaxStars-n, 0))
}

func amortizationMarkdown(result model.AmortizationResult, code string) string {
	var b strings.Builder
	b.WriteString("# Amortization\n\n")
	b.WriteString("| Metric | Value |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Monthly payment | %s |\n", formatMoney(result.MonthlyPayment, code))
	fmt.Fprintf(&b, "| Remaining balance | %s |\n", formatMoney(result.RemainingBalance, code))
	fmt.Fprintf(&b, "| Remaining months | %d |\n", result.RemainingMonths)
	fmt.Fprintf(&b, "| Total interest | %s |\n", formatMoney(result.TotalInterest, code))

	if len(result.Schedule) > 0 {
		b.WriteString("\n## Schedule\n\n")
		b.WriteString("| Month | Payment | Interest | Principal | Balance |\n|---:|---:|---:|---:|---:|\n")
		for _, row := range result.Schedule {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				row.Month,
				formatMoney(row.Payment, code),
				formatMoney(row.Interest, code),
				formatMoney(row.Principal, code),
				formatMoney(row.Balance, code))
		}
	}
	return b.String()
}

func roiMarkdown(appreciation finance.RealAppreciationResult, roi finance.TrueROIResult, code string) string {
	var b strings.Builder
	b.WriteString("# Return on investment\n\n")
	b.WriteString("| Metric | Value |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Years held | %d |\n", appreciation.YearsHeld)
	fmt.Fprintf(&b, "| Nominal ROI | %s |\n", formatPercent(appreciation.NominalROI))
	fmt.Fprintf(&b, "| Nominal appreciation / year | %s |\n", formatPercent(appreciation.NominalAppreciationRate))
	fmt.Fprintf(&b, "| Inflation factor | %.4f |\n", appreciation.InflationFactor)
	fmt.Fprintf(&b, "| Inflation-adjusted purchase price | %s |\n", formatMoney(appreciation.AdjustedPurchasePrice, code))
	fmt.Fprintf(&b, "| Real appreciation | %s |\n", formatPercent(appreciation.RealAppreciation))
	fmt.Fprintf(&b, "| Real appreciation / year | %s |\n", formatPercent(appreciation.RealAppreciationRate))
	fmt.Fprintf(&b, "| Appreciation gain | %s |\n", formatMoney(roi.AppreciationGain, code))
	fmt.Fprintf(&b, "| Total cash flow | %s |\n", formatMoney(roi.TotalCashFlow, code))
	fmt.Fprintf(&b, "| Total return | %s |\n", formatMoney(roi.TotalReturn, code))
	fmt.Fprintf(&b, "| Total ROI | %s |\n", formatPercent(roi.TotalROI))
	fmt.Fprintf(&b, "| Annualized ROI | %s |\n", formatPercent(roi.AnnualizedROI))
	return b.String()
}

func mirrMarkdown(summary model.MIRRSummary) string {
	var b strings.Builder
	b.WriteString("# Modified internal rate of return\n\n")
	if !summary.Valid {
		b.WriteString("The cash flows need at least one outflow and one inflow.\n")
		return b.String()
	}
	b.WriteString("| Metric | Value |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Periods | %d |\n", summary.Periods)
	fmt.Fprintf(&b, "| Monthly MIRR | %s |\n", formatPercent(summary.MonthlyPercent))
	fmt.Fprintf(&b, "| Annual MIRR | %s |\n", formatPercent(summary.AnnualPercent))
	return b.String()
}

func projectionMarkdown(rows []finance.ProjectionRow, code string, inflationAdjusted bool) string {
	var b strings.Builder
	b.WriteString("# Projection")
	if inflationAdjusted {
		b.WriteString(" (inflation adjusted)")
	}
	b.WriteString("\n\n")
	b.WriteString("| Year | Market value | Annual rent | Cash at hand | Net equity | After-tax equity | Cap rate |\n")
	b.WriteString("|---:|---:|---:|---:|---:|---:|---:|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			row.Year,
			formatMoney(row.MarketValue, code),
			formatMoney(row.AnnualRent, code),
			formatMoney(row.CashAtHand, code),
			formatMoney(row.NetEquity, code),
			formatMoney(row.AfterTaxEquity, code),
			formatPercent(row.CapRate))
	}
	return b.String()
}

func portfolioMarkdown(summary model.PortfolioSummary) string {
	score := summary.Score

	var b strings.Builder
	b.WriteString("# Portfolio\n\n")
	b.WriteString("| Metric | Value |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Properties | %d |\n", score.PropertyCount)
	fmt.Fprintf(&b, "| Rent generating | %d |\n", score.RentGeneratingCount)
	fmt.Fprintf(&b, "| Real ROI (all) | %s |\n", formatPercent(score.RealROIAll))
	fmt.Fprintf(&b, "| Real ROI (rent generating) | %s |\n", formatPercent(score.RealROIRentGenerating))
	fmt.Fprintf(&b, "| Cash at hand / year | %s |\n", summary.CashAtHandLabel)
	fmt.Fprintf(&b, "| Efficiency | %s |\n", formatPercent(score.Efficiency))
	fmt.Fprintf(&b, "| ROI rating | %s |\n", stars(score.ROIStars))
	fmt.Fprintf(&b, "| Efficiency rating | %s |\n", stars(score.EfficiencyStars))
	fmt.Fprintf(&b, "| Overall rating | %.1f |\n", score.OverallRating)

	if len(summary.Properties) > 0 {
		b.WriteString("\n## Properties\n\n")
		b.WriteString("| Name | Market value | Net yield | Cap rate | Real appreciation / year | Annual MIRR |\n")
		b.WriteString("|:---|---:|---:|---:|---:|---:|\n")
		for _, p := range summary.Properties {
			mirr := "-"
			if p.HistoricalMIRR.Valid {
				mirr = formatPercent(p.HistoricalMIRR.AnnualPercent)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				escapeCell(p.Name),
				formatMoney(p.MarketValue, p.Currency),
				formatMoney(p.AnnualNetYield, p.Currency),
				formatPercent(p.CapRate),
				formatPercent(p.RealAppreciation.RealAppreciationRate),
				mirr)
		}
	}
	return b.String()
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\n", " ", "\r", " ")

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
