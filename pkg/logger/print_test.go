package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/minio/mc/pkg/probe"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestJoinMessage(t *testing.T) {
	tests := []struct {
		msg  string
		err  error
		want string
	}{
		{msg: "Unable to load session", err: errors.New("file not found"), want: "Unable to load session: file not found."},
		{msg: "Unable to load session", err: errors.New("File not found"), want: "Unable to load session. File not found."},
		{msg: "Bad input:", err: errors.New("x."), want: "Bad input: x."},
		{msg: "  padded  ", err: errors.New("cause  "), want: "padded: cause."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, joinMessage(tt.msg, probe.NewError(tt.err)))
		})
	}
}

func TestInitWriterLogger(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	var buf bytes.Buffer
	InitWriterLogger(&buf, "json", "info")
	Logger.Debugw("hidden")
	Logger.Infow("shown", "card_gb", 128)
	Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"card_gb":128`)
}

func TestInitLoggerFiles(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })
	dir := t.TempDir()
	assert.NoError(t, InitLogger("test", "text", "debug", dir, false))
	Logger.Infof("written to %s", dir)
	Sync()
	assert.NoError(t, InitLogger("test", "text", "info", "", false))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("DEBUG").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "error", parseLevel("err").String())
	assert.Equal(t, "info", parseLevel("whatever").String())
}
