// Dashcam recording scene - input data model
package models

import (
	"errors"
	"fmt"
	"math"
)

// Input boundary limits.
const (
	MinStreams = 1
	MaxStreams = 8

	MaxHoursPerDay = 24.0

	MinRetentionHours = 1
	MaxRetentionHours = 168

	MinLifetimeYears = 0.5

	MinSafetyMarginPct = 0.0
	MaxSafetyMarginPct = 200.0
)

// Parameter defaults.
const (
	DefaultRetentionHours  = 24
	DefaultLifetimeYears   = 3.0
	DefaultSafetyMarginPct = 20.0
)

var (
	ErrInvalidStream = errors.New("invalid stream")
	ErrInvalidParams = errors.New("invalid parameters")
)

// StreamConfig one recording stream as described by the user
type StreamConfig struct {
	Name          string  `json:"name" yaml:"name"`                       // display label
	FileSizeMB    float64 `json:"file_size_mb" yaml:"file_size_mb"`       // size of one recorded file, or MB per hour for a timelapse
	FileLengthMin float64 `json:"file_length_min" yaml:"file_length_min"` // minutes covered by one file
	HoursPerDay   float64 `json:"hours_per_day" yaml:"hours_per_day"`     // hours per day the stream writes, 0 disables it
}

// Params global recommendation parameters
type Params struct {
	RetentionHours        int     `json:"retention_hours" yaml:"retention_hours"`                 // footage to keep before the card loops
	ExpectedLifetimeYears float64 `json:"expected_lifetime_years" yaml:"expected_lifetime_years"` // wanted card lifetime
	SafetyMarginPct       float64 `json:"safety_margin_pct" yaml:"safety_margin_pct"`             // TBW safety margin in percent
}

// DefaultParams returns the parameters used when nothing is specified.
func DefaultParams() Params {
	return Params{
		RetentionHours:        DefaultRetentionHours,
		ExpectedLifetimeYears: DefaultLifetimeYears,
		SafetyMarginPct:       DefaultSafetyMarginPct,
	}
}

// DefaultStream returns the pre-filled stream for position idx (0-based).
// The first stream records all day, the others start disabled.
func DefaultStream(idx int) StreamConfig {
	if idx == 0 {
		return StreamConfig{
			Name:          DefaultStreamName(idx),
			FileSizeMB:    315,
			FileLengthMin: 5,
			HoursPerDay:   24,
		}
	}
	return StreamConfig{
		Name:          DefaultStreamName(idx),
		FileSizeMB:    50,
		FileLengthMin: 1,
		HoursPerDay:   0,
	}
}

// DefaultStreamName is the label of an unnamed stream at position idx.
func DefaultStreamName(idx int) string {
	return fmt.Sprintf("Stream %d", idx+1)
}

// ExampleStreams front and rear cameras, driving 1 h/day and parked in
// timelapse mode the remaining 23 h.
func ExampleStreams() []StreamConfig {
	return []StreamConfig{
		{Name: "Front (normal)", FileSizeMB: 315, FileLengthMin: 5, HoursPerDay: 1},
		{Name: "Rear (normal)", FileSizeMB: 315, FileLengthMin: 5, HoursPerDay: 1},
		{Name: "Front (timelapse)", FileSizeMB: 445, FileLengthMin: 60, HoursPerDay: 23},
		{Name: "Rear (timelapse)", FileSizeMB: 140, FileLengthMin: 60, HoursPerDay: 23},
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the stream against the input boundary.
func (s StreamConfig) Validate() error {
	switch {
	case !finite(s.FileSizeMB) || s.FileSizeMB < 0:
		return fmt.Errorf("%w %q: file size must be >= 0 MB, got %v", ErrInvalidStream, s.Name, s.FileSizeMB)
	case !finite(s.FileLengthMin) || s.FileLengthMin <= 0:
		return fmt.Errorf("%w %q: file length must be > 0 minutes, got %v", ErrInvalidStream, s.Name, s.FileLengthMin)
	case !finite(s.HoursPerDay) || s.HoursPerDay < 0 || s.HoursPerDay > MaxHoursPerDay:
		return fmt.Errorf("%w %q: hours per day must be within [0, %v], got %v", ErrInvalidStream, s.Name, MaxHoursPerDay, s.HoursPerDay)
	case !finite(s.FileSizeMB / s.FileLengthMin * 60 * MaxHoursPerDay):
		return fmt.Errorf("%w %q: %v MB every %v minutes is out of range", ErrInvalidStream, s.Name, s.FileSizeMB, s.FileLengthMin)
	}
	return nil
}

// Validate checks the parameters against the input boundary.
func (p Params) Validate() error {
	switch {
	case p.RetentionHours < MinRetentionHours || p.RetentionHours > MaxRetentionHours:
		return fmt.Errorf("%w: retention hours must be within [%d, %d], got %d",
			ErrInvalidParams, MinRetentionHours, MaxRetentionHours, p.RetentionHours)
	case !finite(p.ExpectedLifetimeYears) || p.ExpectedLifetimeYears < MinLifetimeYears:
		return fmt.Errorf("%w: lifetime must be >= %v years, got %v",
			ErrInvalidParams, MinLifetimeYears, p.ExpectedLifetimeYears)
	case !finite(p.SafetyMarginPct) || p.SafetyMarginPct < MinSafetyMarginPct || p.SafetyMarginPct > MaxSafetyMarginPct:
		return fmt.Errorf("%w: safety margin must be within [%v, %v] %%, got %v",
			ErrInvalidParams, MinSafetyMarginPct, MaxSafetyMarginPct, p.SafetyMarginPct)
	}
	return nil
}

// ValidateStreams checks the stream count and every stream.
func ValidateStreams(streams []StreamConfig) error {
	if len(streams) < MinStreams || len(streams) > MaxStreams {
		return fmt.Errorf("%w: stream count must be within [%d, %d], got %d",
			ErrInvalidStream, MinStreams, MaxStreams, len(streams))
	}
	for _, s := range streams {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Session a complete input set: the streams plus the global parameters.
type Session struct {
	Streams []StreamConfig `json:"streams" yaml:"streams"`
	Params  `yaml:",inline"`
}

// NamedStreams fills in default labels for unnamed streams.
func (s *Session) NamedStreams() []StreamConfig {
	out := make([]StreamConfig, len(s.Streams))
	for i, st := range s.Streams {
		if st.Name == "" {
			st.Name = DefaultStreamName(i)
		}
		out[i] = st
	}
	return out
}

// Validate checks streams and parameters, and that the writes projected
// over the lifetime stay finite.
func (s *Session) Validate() error {
	if err := ValidateStreams(s.Streams); err != nil {
		return err
	}
	if err := s.Params.Validate(); err != nil {
		return err
	}
	var mbPerDay float64
	for _, st := range s.Streams {
		mbPerDay += st.FileSizeMB / st.FileLengthMin * 60 * st.HoursPerDay
	}
	lifetime := mbPerDay * 365 * s.ExpectedLifetimeYears * (1 + s.SafetyMarginPct/100)
	if !finite(lifetime) {
		return fmt.Errorf("%w: %v MB/day over %v years is out of range",
			ErrInvalidParams, mbPerDay, s.ExpectedLifetimeYears)
	}
	return nil
}
