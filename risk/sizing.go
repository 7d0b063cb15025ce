package risk

import "math"

// Sizing holds the inputs to the daily position sizer.
type Sizing struct {
	Balance     float64 // account balance at day open
	RiskPercent float64 // 5 = risk 5% of balance per day
	StopPoints  float64 // stop-loss distance in points
	PointValue  float64 // dollar value of one point per contract
}

// Result is the sizer output.
type Result struct {
	Contracts       int     // contracts to trade for the rest of the day
	RiskBudget      float64 // Balance * RiskPercent / 100
	RiskPerContract float64 // StopPoints * PointValue
}

// Calculate returns the contract count for the day: the daily risk budget
// divided by the dollar risk per contract, floored toward zero.
//
// A non-positive risk-per-contract (malformed settings) yields zero contracts
// rather than an error; the caller surfaces it as "cannot size a trade".
func Calculate(in Sizing) Result {
	r := Result{
		RiskBudget:      in.Balance * in.RiskPercent / 100,
		RiskPerContract: in.StopPoints * in.PointValue,
	}

	if r.RiskPerContract <= 0 || r.RiskBudget <= 0 {
		return r
	}

	if n := math.Floor(r.RiskBudget / r.RiskPerContract); n > 0 {
		r.Contracts = int(n)
	}
	return r
}

// Contracts is a shorthand for Calculate(...).Contracts.
func Contracts(balance, riskPercent, stopPoints, pointValue float64) int {
	return Calculate(Sizing{
		Balance:     balance,
		RiskPercent: riskPercent,
		StopPoints:  stopPoints,
		PointValue:  pointValue,
	}).Contracts
}
