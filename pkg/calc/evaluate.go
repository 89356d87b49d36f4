package calc

import (
	"sdcalc/models"
	"sdcalc/pkg/logger"
)

// Report everything derived from one input set
type Report struct {
	Params         models.Params   `json:"params"`
	Streams        []StreamResult  `json:"streams"`
	Aggregate      AggregateResult `json:"aggregate"`
	Endurance      Endurance       `json:"endurance"`
	Recommendation Recommendation  `json:"recommendation"`
	RetentionTable []CardRetention `json:"retention_table"`
}

// Evaluate runs the full calculation for streams under params.
// Inputs are expected to be validated by the caller.
func Evaluate(streams []models.StreamConfig, params models.Params) *Report {
	results := StreamsMetrics(streams)
	for _, r := range results {
		logger.Logger.Debugf("stream %q: %.3f MB/min, %.3f Mbps, %.1f MB/day",
			r.Stream.Name, r.MBPerMin, r.Mbps, r.MBPerDay)
	}

	agg := Aggregate(results)
	rep := &Report{
		Params:         params,
		Streams:        results,
		Aggregate:      agg,
		Endurance:      EstimateEndurance(agg.TBPerYear, params.ExpectedLifetimeYears, params.SafetyMarginPct),
		Recommendation: RecommendCapacity(agg.AvgMBPerHourAll, params.RetentionHours),
		RetentionTable: RetentionTable(agg.AvgMBPerHourAll),
	}
	logger.Logger.Debugf("total %.1f MB/day, %.4f TB/year, card %d GB (saturated=%v), TBW %.3f TB",
		agg.TotalMBPerDay, agg.TBPerYear, rep.Recommendation.CardGB,
		rep.Recommendation.Saturated, rep.Endurance.TBWWithMargin)
	return rep
}
