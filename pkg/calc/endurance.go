package calc

// Endurance TBW projection over the card lifetime
type Endurance struct {
	LifetimeYears       float64 `json:"expected_lifetime_years"`
	SafetyMarginPct     float64 `json:"safety_margin_pct"`
	TBWRequiredOverLife float64 `json:"tbw_required_over_life"` // TB
	TBWWithMargin       float64 `json:"tbw_with_margin"`        // TB
}

// EstimateEndurance projects total bytes written over lifetimeYears.
//
// The projection is linear: the daily write rate is assumed constant for the
// whole lifetime, with no seasonal or growth component.
func EstimateEndurance(tbPerYear, lifetimeYears, safetyMarginPct float64) Endurance {
	required := tbPerYear * lifetimeYears
	return Endurance{
		LifetimeYears:       lifetimeYears,
		SafetyMarginPct:     safetyMarginPct,
		TBWRequiredOverLife: required,
		TBWWithMargin:       required * (1 + safetyMarginPct/100),
	}
}
