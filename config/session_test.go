package config

import (
	"path/filepath"
	"testing"

	"sdcalc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSession(t *testing.T) {
	s, err := ParseSession([]byte(`
streams:
  - name: Front
    file_size_mb: 315
    file_length_min: 5
    hours_per_day: 1
  - file_size_mb: 445
    file_length_min: 60
    hours_per_day: 23
retention_hours: 48
`))
	require.NoError(t, err)
	require.Len(t, s.Streams, 2)
	assert.Equal(t, "Front", s.Streams[0].Name)
	assert.Equal(t, 445.0, s.Streams[1].FileSizeMB)
	assert.Equal(t, 48, s.RetentionHours)
	// not in the file, default kept
	assert.Equal(t, models.DefaultLifetimeYears, s.ExpectedLifetimeYears)
	assert.Equal(t, models.DefaultSafetyMarginPct, s.SafetyMarginPct)

	named := s.NamedStreams()
	assert.Equal(t, "Stream 2", named[1].Name)
	assert.Empty(t, s.Streams[1].Name)
}

func TestParseSessionErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "streams: []\nretention: 24\n"},
		{name: "wrong type", data: "retention_hours: lots\n"},
		{name: "not yaml", data: "streams: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSession([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseSessionEmpty(t *testing.T) {
	for _, data := range []string{"", "\n"} {
		s, err := ParseSession([]byte(data))
		require.NoError(t, err, "%q", data)
		assert.Empty(t, s.Streams)
		assert.Equal(t, models.DefaultParams(), s.Params)
		assert.ErrorIs(t, s.Validate(), models.ErrInvalidStream)
	}
}

func TestSaveLoadSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	want := &models.Session{
		Streams: models.ExampleStreams(),
		Params:  models.Params{RetentionHours: 72, ExpectedLifetimeYears: 2.5, SafetyMarginPct: 50},
	}
	require.NoError(t, SaveSession(path, want))

	got, err := LoadSession(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSessionMissingFile(t *testing.T) {
	_, err := LoadSession(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
