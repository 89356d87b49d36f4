package calc

import (
	"testing"

	"sdcalc/models"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestStreamMetrics(t *testing.T) {
	tests := []struct {
		name         string
		stream       models.StreamConfig
		wantPerMin   float64
		wantPerHour  float64
		wantPerDay   float64
		wantAvgPerHr float64
		wantMbps     float64
	}{
		{
			name:         "front camera all day",
			stream:       models.StreamConfig{Name: "Front", FileSizeMB: 315, FileLengthMin: 5, HoursPerDay: 24},
			wantPerMin:   63,
			wantPerHour:  3780,
			wantPerDay:   90720,
			wantAvgPerHr: 3780,
			wantMbps:     8.4,
		},
		{
			name:         "timelapse entered as MB per hour",
			stream:       models.StreamConfig{Name: "Rear (timelapse)", FileSizeMB: 140, FileLengthMin: 60, HoursPerDay: 23},
			wantPerMin:   140.0 / 60,
			wantPerHour:  140,
			wantPerDay:   3220,
			wantAvgPerHr: 3220.0 / 24,
			wantMbps:     140.0 / 3600 * 8,
		},
		{
			name:       "disabled stream",
			stream:     models.StreamConfig{FileSizeMB: 315, FileLengthMin: 5, HoursPerDay: 0},
			wantPerMin: 63, wantPerHour: 3780, wantMbps: 8.4,
		},
		{
			name:   "zero length falls back to zero rate",
			stream: models.StreamConfig{FileSizeMB: 315, FileLengthMin: 0, HoursPerDay: 24},
		},
		{
			name:   "negative length falls back to zero rate",
			stream: models.StreamConfig{FileSizeMB: 315, FileLengthMin: -5, HoursPerDay: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := StreamMetrics(tt.stream)
			assert.Equal(t, tt.stream, r.Stream)
			assert.InDelta(t, tt.wantPerMin, r.MBPerMin, eps)
			assert.InDelta(t, tt.wantPerHour, r.MBPerHour, eps)
			assert.InDelta(t, tt.wantPerHour/3600, r.MBPerSec, eps)
			assert.InDelta(t, tt.wantMbps, r.Mbps, eps)
			assert.InDelta(t, tt.wantPerDay, r.MBPerDay, eps)
			assert.InDelta(t, tt.wantAvgPerHr, r.AvgMBPerHour, eps)
		})
	}
}

func TestStreamMetricsDailyFormula(t *testing.T) {
	for _, size := range []float64{0, 0.5, 50, 315, 445, 4096} {
		for _, length := range []float64{1, 2.5, 5, 60, 180} {
			for _, hours := range []float64{0, 0.5, 1, 12, 23, 24} {
				s := models.StreamConfig{FileSizeMB: size, FileLengthMin: length, HoursPerDay: hours}
				want := size / length * 60 * hours
				assert.InDelta(t, want, StreamMetrics(s).MBPerDay, 1e-6, "%+v", s)
			}
		}
	}
}

func TestStreamsMetricsKeepsOrder(t *testing.T) {
	streams := models.ExampleStreams()
	results := StreamsMetrics(streams)
	if assert.Len(t, results, len(streams)) {
		for i := range streams {
			assert.Equal(t, streams[i].Name, results[i].Stream.Name)
		}
	}
	assert.Empty(t, StreamsMetrics(nil))
}
