package calc

import "math"

// CardLadder standard card capacities (GB) a recommendation is rounded up to.
var CardLadder = []int{4, 8, 16, 32, 64, 128, 256, 512, 1024}

// ReferenceLadder card capacities (GB) shown in the retention table.
var ReferenceLadder = []int{16, 32, 64, 128, 256, 512, 1024}

// Recommendation card size needed to keep the wanted retention
type Recommendation struct {
	RetentionHours int     `json:"retention_hours"`
	MBNeeded       float64 `json:"mb_needed"`
	GBNeeded       float64 `json:"gb_needed"`
	CardGB         int     `json:"card_gb"`
	Saturated      bool    `json:"saturated"` // need exceeds the largest card, CardGB is clamped
}

// CardRetention retention one card size gives
type CardRetention struct {
	CardGB    int       `json:"card_gb"`
	Retention Retention `json:"hours_of_retention"`
}

// RecommendCapacity picks the smallest ladder card holding retentionHours of
// footage at the 24 h average rate. The need is rounded up to whole GB first,
// so exactly 32.0 GB selects 32. Needs beyond the ladder saturate at its
// largest entry.
func RecommendCapacity(avgMBPerHourAll float64, retentionHours int) Recommendation {
	mb := avgMBPerHourAll * float64(retentionHours)
	gb := mb / MBPerGB
	card, saturated := pickCardSize(math.Ceil(gb))
	return Recommendation{
		RetentionHours: retentionHours,
		MBNeeded:       mb,
		GBNeeded:       gb,
		CardGB:         card,
		Saturated:      saturated,
	}
}

func pickCardSize(gbNeeded float64) (int, bool) {
	for _, s := range CardLadder {
		if gbNeeded <= float64(s) {
			return s, false
		}
	}
	return CardLadder[len(CardLadder)-1], true
}

// RetentionFor hours of footage a card of cardGB holds at the given rate.
// A rate too small for the quotient to be finite counts as no writes.
func RetentionFor(cardGB int, avgMBPerHourAll float64) Retention {
	if avgMBPerHourAll <= 0 {
		return Unbounded()
	}
	h := float64(cardGB) * MBPerGB / avgMBPerHourAll
	if math.IsInf(h, 0) {
		return Unbounded()
	}
	return Finite(h)
}

// RetentionTable retention of every ReferenceLadder card at the given rate.
func RetentionTable(avgMBPerHourAll float64) []CardRetention {
	return RetentionTableFor(ReferenceLadder, avgMBPerHourAll)
}

// RetentionTableFor retention of each of sizes at the given rate.
func RetentionTableFor(sizes []int, avgMBPerHourAll float64) []CardRetention {
	out := make([]CardRetention, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, CardRetention{CardGB: s, Retention: RetentionFor(s, avgMBPerHourAll)})
	}
	return out
}
