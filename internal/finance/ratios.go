package finance

// CapRate is annual net operating income over market value, in percent.
func CapRate(annualNOI, marketValue float64) float64 {
	if marketValue <= 0 {
		return 0
	}
	return roundPercent(annualNOI / marketValue * 100)
}

// NetYield is annual rent minus annual operating expenses.
func NetYield(annualRent, annualExpenses float64) float64 {
	return roundMoney(annualRent - annualExpenses)
}

// CashOnCash is the annual cash flow over the cash initially invested, in
// percent.
func CashOnCash(annualCashFlow, cashInvested float64) float64 {
	if cashInvested <= 0 {
		return 0
	}
	return roundPercent(annualCashFlow / cashInvested * 100)
}

// Efficiency is the annual net yield over market value, in percent.
func Efficiency(annualNetYield, marketValue float64) float64 {
	if marketValue <= 0 {
		return 0
	}
	return roundPercent(annualNetYield / marketValue * 100)
}
