package report

import (
	"encoding/json"
	"io"

	"sdcalc/pkg/calc"
	"sdcalc/pkg/utils"
)

// Summary headline figures of a report, rounded for reading.
type Summary struct {
	CardGB        int     `json:"card_gb"`
	GBPerDay      float64 `json:"gb_per_day"`
	TBPerYear     float64 `json:"tb_per_year"`
	TBWWithMargin float64 `json:"tbw_with_margin_tb"`
	Saturated     bool    `json:"saturated,omitempty"`
}

// Summarize picks the headline figures of rep.
func Summarize(rep *calc.Report) Summary {
	return Summary{
		CardGB:        rep.Recommendation.CardGB,
		GBPerDay:      utils.Decimal(rep.Aggregate.GBPerDay, 2),
		TBPerYear:     utils.Decimal(rep.Aggregate.TBPerYear, 3),
		TBWWithMargin: utils.Decimal(rep.Endurance.TBWWithMargin, 3),
		Saturated:     rep.Recommendation.Saturated,
	}
}

// WriteJSON writes the report wrapped in a success envelope, matching the
// error envelope printed on failure. The full report keeps full precision.
func WriteJSON(w io.Writer, rep *calc.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(struct {
		Status  string       `json:"status"`
		Summary Summary      `json:"summary"`
		Report  *calc.Report `json:"report"`
	}{
		Status:  "success",
		Summary: Summarize(rep),
		Report:  rep,
	})
}

// WriteCardsJSON writes a card ladder retention table for one write rate.
func WriteCardsJSON(w io.Writer, avgMBPerHour float64, rows []calc.CardRetention) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	return enc.Encode(struct {
		Status       string               `json:"status"`
		AvgMBPerHour float64              `json:"avg_mb_per_hour"`
		Cards        []calc.CardRetention `json:"cards"`
	}{
		Status:       "success",
		AvgMBPerHour: avgMBPerHour,
		Cards:        rows,
	})
}
