package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sdcalc/config"
	"sdcalc/models"

	"github.com/klauspost/compress/zstd"
	"github.com/minio/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApp *cli.App

func TestMain(m *testing.M) {
	testApp = registerApp(config.AppName, appCmds)
	os.Exit(m.Run())
}

// run executes the app with args and returns what it printed.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() {
		stdout = old
		config.GlobalJSON = false
		config.GlobalQuiet = false
		config.GlobalDebug = false
	})
	require.NoError(t, testApp.Run(append([]string{config.AppName}, args...)))
	return buf.String()
}

type jsonReport struct {
	Status string `json:"status"`
	Report struct {
		Aggregate struct {
			TotalMBPerDay float64 `json:"total_mb_per_day"`
		} `json:"aggregate"`
		Recommendation struct {
			CardGB int `json:"card_gb"`
		} `json:"recommendation"`
		Streams []json.RawMessage `json:"streams"`
	} `json:"report"`
}

func TestCalcJSON(t *testing.T) {
	out := run(t, "calc", "--json", "--stream", "Front:315:5:24")

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "success", rep.Status)
	assert.Len(t, rep.Report.Streams, 1)
	assert.InDelta(t, 90720, rep.Report.Aggregate.TotalMBPerDay, 1e-6)
	assert.Equal(t, 128, rep.Report.Recommendation.CardGB)
}

func TestCalcShortStreamFlag(t *testing.T) {
	export := filepath.Join(t.TempDir(), "short")
	out := run(t, "calc", "--json", "-s", "Front:100:1:24", "--export", export)

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Report.Streams, 1)
	assert.InDelta(t, 144000, rep.Report.Aggregate.TotalMBPerDay, 1e-6)

	f, err := os.Open(export + ".csv.zst")
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()
	data, err := io.ReadAll(dec)
	require.NoError(t, err)
	header, _, _ := strings.Cut(string(data), "\n")
	assert.Contains(t, header, "--stream=Front:100:1:24")
}

func TestCalcShortFlagsOverrideFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.yaml")
	require.NoError(t, config.SaveSession(in, &models.Session{
		Streams: models.ExampleStreams(),
		Params:  models.DefaultParams(),
	}))

	out := run(t, "calc", "--json", "-f", in, "-n", "1")
	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Report.Streams, 1)
	assert.InDelta(t, 90720, rep.Report.Aggregate.TotalMBPerDay, 1e-6)
}

func TestCalcDefaultStreams(t *testing.T) {
	out := run(t, "calc", "--json")

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	// the second default stream is disabled
	assert.Len(t, rep.Report.Streams, 2)
	assert.InDelta(t, 90720, rep.Report.Aggregate.TotalMBPerDay, 1e-6)
}

func TestCalcQuiet(t *testing.T) {
	out := run(t, "calc", "--quiet", "-s", "Front:315:5:24", "--retention-hours", "24")
	assert.Equal(t, "128 GB card, 113.684 TB TBW\n", out)
}

func TestCalcText(t *testing.T) {
	out := run(t, "calc", "--no-color", "-s", "Front:315:5:1", "-s", "Rear:140:60:23")
	assert.Contains(t, out, "Per-stream breakdown")
	assert.Contains(t, out, "Front")
	assert.Contains(t, out, "Rear")
	assert.Contains(t, out, "hours_of_retention")
}

func TestExampleJSON(t *testing.T) {
	out := run(t, "example", "--json")

	var rep jsonReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Report.Streams, 4)
	assert.InDelta(t, 21015, rep.Report.Aggregate.TotalMBPerDay, 1e-6)
	assert.Equal(t, 32, rep.Report.Recommendation.CardGB)
}

func TestCalcFileSaveExport(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	require.NoError(t, config.SaveSession(in, &models.Session{
		Streams: models.ExampleStreams(),
		Params:  models.Params{RetentionHours: 48, ExpectedLifetimeYears: 5, SafetyMarginPct: 10},
	}))

	saved := filepath.Join(dir, "out.yaml")
	export := filepath.Join(dir, "report")
	run(t, "calc", "--json", "--file", in, "--retention-hours", "72", "--save", saved, "--export", export)

	got, err := config.LoadSession(saved)
	require.NoError(t, err)
	assert.Equal(t, models.ExampleStreams(), got.Streams)
	// explicit flag wins, the rest comes from the file
	assert.Equal(t, 72, got.RetentionHours)
	assert.Equal(t, 5.0, got.ExpectedLifetimeYears)
	assert.Equal(t, 10.0, got.SafetyMarginPct)

	_, err = os.Stat(export + ".csv.zst")
	assert.NoError(t, err)
}

func TestCards(t *testing.T) {
	out := run(t, "cards", "--json", "--rate", "0")

	var got struct {
		Cards []struct {
			CardGB int         `json:"card_gb"`
			Hours  interface{} `json:"hours_of_retention"`
		} `json:"cards"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Cards, 9)
	assert.Equal(t, 4, got.Cards[0].CardGB)
	assert.Equal(t, "unbounded", got.Cards[0].Hours)
}

func TestFindClosestCommands(t *testing.T) {
	assert.Equal(t, []string{"calc"}, findClosestCommands("cal"))
	assert.Equal(t, []string{"cards"}, findClosestCommands("crads"))
	assert.Contains(t, findClosestCommands("ca"), "cards")
	assert.Empty(t, findClosestCommands("zzz"))
}
