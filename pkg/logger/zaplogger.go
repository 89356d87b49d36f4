package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DisplayMode control the output format
type DisplayMode int

// display modes
const (
	DisplayModeDefault DisplayMode = iota // default is the interactive output
	DisplayModePlain                      // plain text
	DisplayModeJSON                       // JSON
)

// Logger is a no-op until InitLogger is called.
var Logger = zap.NewNop().Sugar()

func logFmtDisplayMode(logFmt string) DisplayMode {
	var dp DisplayMode
	switch strings.ToLower(logFmt) {
	case "json":
		dp = DisplayModeJSON
	case "plain", "text":
		dp = DisplayModePlain
	default:
		dp = DisplayModeDefault
	}
	return dp
}

// getEncoder returns the encoder for logFmt
func getEncoder(logFmt string) zapcore.Encoder {
	dp := logFmtDisplayMode(logFmt)
	switch dp {
	case DisplayModeJSON:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.ConsoleSeparator = "  "
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
}

// getlumberJackLogWriter writes to a file rotated by size
func getlumberJackLogWriter(logPath string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   false,
	})
}

// getRotateLogWriter writes to a file rotated daily
func getRotateLogWriter(logPath string) (zapcore.WriteSyncer, error) {
	w, err := rotatelogs.New(
		logPath,
		rotatelogs.WithMaxAge(30*24*time.Hour),
		rotatelogs.WithRotationTime(time.Hour*24),
	)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(w), nil
}

// getLogWriter returns the file writer for loggerType
func getLogWriter(logPath string, loggerType string) (zapcore.WriteSyncer, error) {
	switch loggerType {
	case "rotatelogs":
		return getRotateLogWriter(logPath)
	default:
		return getlumberJackLogWriter(logPath), nil
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "err", "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger builds Logger. With a logDir the full log goes to a daily rotated
// "<time>_<prefix>_all.log" and errors additionally to a size rotated
// "<time>_<prefix>_err.log". printConsole also writes to stderr; with neither a
// logDir nor printConsole the logger stays silent.
func InitLogger(prefix, logFmt, level, logDir string, printConsole bool) error {
	logLevel := parseLevel(level)
	encoder := getEncoder(logFmt)

	var cores []zapcore.Core
	if printConsole {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), logLevel))
	}
	if logDir != "" {
		if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		timeStr := time.Now().Format("20060102_150405")

		allF, err := getLogWriter(filepath.Join(logDir, fmt.Sprintf("%s_%s_all.log", timeStr, prefix)), "rotatelogs")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, allF, logLevel))

		errF, err := getLogWriter(filepath.Join(logDir, fmt.Sprintf("%s_%s_err.log", timeStr, prefix)), "lumberjack")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, errF, zap.ErrorLevel))
	}
	if len(cores) == 0 {
		Logger = zap.NewNop().Sugar()
		return nil
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Sugar()
	return nil
}

// InitWriterLogger sends the log to w, mainly for tests.
func InitWriterLogger(w io.Writer, logFmt, level string) {
	core := zapcore.NewCore(getEncoder(logFmt), zapcore.AddSync(w), parseLevel(level))
	Logger = zap.New(core).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
