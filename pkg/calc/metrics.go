// Package calc derives storage write-rate figures for recording streams and
// turns them into card capacity and endurance recommendations.
//
// Every function is a pure computation over its arguments.
package calc

import "sdcalc/models"

// Unit conversions.
const (
	MBPerGB     = 1024.0
	GBPerTB     = 1024.0
	DaysPerYear = 365.0
	HoursPerDay = 24.0

	minutesPerHour = 60.0
	secondsPerHour = 3600.0
	bitsPerByte    = 8.0
)

// StreamResult derived rate metrics of one stream
type StreamResult struct {
	Stream       models.StreamConfig `json:"stream"`
	MBPerMin     float64             `json:"mb_per_min"`
	MBPerHour    float64             `json:"mb_per_hour"`
	MBPerSec     float64             `json:"mb_per_sec"`
	Mbps         float64             `json:"mbps"`            // megabits per second
	MBPerDay     float64             `json:"mb_per_day"`      // MBPerHour * HoursPerDay
	AvgMBPerHour float64             `json:"avg_mb_per_hour"` // MBPerDay averaged over 24 h
}

// StreamMetrics converts one stream into rate metrics.
// A non-positive file length yields a zero rate instead of a division error.
// Timelapse streams are entered as MB per hour over a 60 minute "file" and go
// through the same formula.
func StreamMetrics(s models.StreamConfig) StreamResult {
	r := StreamResult{Stream: s}
	if s.FileLengthMin > 0 {
		r.MBPerMin = s.FileSizeMB / s.FileLengthMin
	}
	r.MBPerHour = r.MBPerMin * minutesPerHour
	r.MBPerSec = r.MBPerHour / secondsPerHour
	r.Mbps = r.MBPerSec * bitsPerByte
	r.MBPerDay = r.MBPerHour * s.HoursPerDay
	r.AvgMBPerHour = r.MBPerDay / HoursPerDay
	return r
}

// StreamsMetrics runs StreamMetrics over every stream, keeping order.
func StreamsMetrics(streams []models.StreamConfig) []StreamResult {
	out := make([]StreamResult, 0, len(streams))
	for _, s := range streams {
		out = append(out, StreamMetrics(s))
	}
	return out
}
