package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

// Decision is the outcome of evaluating sizing inputs before trading.
type Decision struct {
	Allowed    bool
	Violations []Violation

	Sized Result
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate runs the sizer and collects violations for inputs that cannot
// produce a tradable size. Callers decide whether a violation blocks entry
// or is only surfaced; the sizer itself never errors.
func Evaluate(in Sizing) Decision {
	d := Decision{Allowed: true}

	if in.Balance < 0 {
		d.add("NEGATIVE_BALANCE",
			fmt.Sprintf("balance %.2f is negative", in.Balance))
	}
	if in.RiskPercent <= 0 || in.RiskPercent > 100 {
		d.add("RISK_PCT_RANGE",
			fmt.Sprintf("risk percent %.2f outside (0, 100]", in.RiskPercent))
	}
	if in.StopPoints <= 0 {
		d.add("NO_STOP_DISTANCE", "stop-loss points must be positive")
	}
	if in.PointValue <= 0 {
		d.add("NO_POINT_VALUE", "point value must be positive")
	}

	d.Sized = Calculate(in)

	if d.Allowed && d.Sized.Contracts == 0 {
		d.add("INSUFFICIENT_BUDGET",
			fmt.Sprintf("risk budget %.2f below risk per contract %.2f",
				d.Sized.RiskBudget, d.Sized.RiskPerContract))
	}

	return d
}
