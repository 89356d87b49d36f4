package calc

// AggregateResult whole-system totals
type AggregateResult struct {
	TotalMBPerDay   float64 `json:"total_mb_per_day"`
	GBPerDay        float64 `json:"gb_per_day"`
	TBPerYear       float64 `json:"tb_per_year"`
	AvgMBPerHourAll float64 `json:"avg_mb_per_hour_all"` // 24 h average over all streams
}

// Aggregate sums per-stream daily volume and converts it.
// An empty input gives an all-zero result.
func Aggregate(results []StreamResult) AggregateResult {
	var a AggregateResult
	for _, r := range results {
		a.TotalMBPerDay += r.MBPerDay
	}
	a.GBPerDay = a.TotalMBPerDay / MBPerGB
	a.TBPerYear = a.GBPerDay * DaysPerYear / GBPerTB
	if a.TotalMBPerDay > 0 {
		a.AvgMBPerHourAll = a.TotalMBPerDay / HoursPerDay
	}
	return a
}
