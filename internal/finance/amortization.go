package finance

import "math"

// Amortization describes a fixed-rate loan after a number of payments.
type Amortization struct {
	MonthlyPayment   float64 `json:"monthlyPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
	RemainingMonths  int     `json:"remainingMonths"`
	TotalInterest    float64 `json:"totalInterest"`
}

// AmortizationRow is one month of an amortization schedule.
type AmortizationRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// Amortize computes the monthly payment of a fixed-rate loan and the balance
// still owed after elapsedMonths payments.
//
// The balance is the present value of the remaining termMonths-elapsedMonths
// payments discounted at the monthly rate, and is exactly zero once the term
// has elapsed. With a zero rate the payment is principal/termMonths and the
// balance decreases linearly. A non-positive principal or term returns the
// zero value; a negative elapsed count is treated as zero.
func Amortize(principal, annualRate float64, termMonths, elapsedMonths int) Amortization {
	if principal <= 0 || termMonths <= 0 {
		return Amortization{}
	}
	elapsedMonths = max(elapsedMonths, 0)

	payment := monthlyPayment(principal, annualRate, termMonths)
	remaining := max(termMonths-elapsedMonths, 0)

	return Amortization{
		MonthlyPayment:   roundMoney(payment),
		RemainingBalance: roundMoney(remainingBalance(principal, annualRate, termMonths, elapsedMonths)),
		RemainingMonths:  remaining,
		TotalInterest:    roundMoney(payment*float64(termMonths) - principal),
	}
}

// AmortizationSchedule returns one row per month of the loan. Interest is
// charged on the running balance; the last row closes the balance to zero.
func AmortizationSchedule(principal, annualRate float64, termMonths int) []AmortizationRow {
	if principal <= 0 || termMonths <= 0 {
		return []AmortizationRow{}
	}

	r := annualRate / 100 / 12
	payment := monthlyPayment(principal, annualRate, termMonths)
	balance := principal

	rows := make([]AmortizationRow, termMonths)
	for month := 1; month <= termMonths; month++ {
		interest := balance * r
		principalPart := payment - interest
		if month == termMonths {
			principalPart = balance
		}
		balance -= principalPart

		rows[month-1] = AmortizationRow{
			Month:     month,
			Payment:   roundMoney(principalPart + interest),
			Interest:  roundMoney(interest),
			Principal: roundMoney(principalPart),
			Balance:   roundMoney(max(balance, 0)),
		}
	}
	return rows
}

func monthlyPayment(principal, annualRate float64, termMonths int) float64 {
	r := annualRate / 100 / 12
	n := float64(termMonths)
	if r == 0 {
		return principal / n
	}
	return principal * r / (1 - math.Pow(1+r, -n))
}

// remainingBalance is the unrounded balance after elapsed payments.
func remainingBalance(principal, annualRate float64, termMonths, elapsedMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	remaining := termMonths - max(elapsedMonths, 0)
	if remaining <= 0 {
		return 0
	}

	payment := monthlyPayment(principal, annualRate, termMonths)
	r := annualRate / 100 / 12
	if r == 0 {
		return payment * float64(remaining)
	}
	return payment * (1 - math.Pow(1+r, -float64(remaining))) / r
}
