package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

func TestNewLoggerServiceWithoutLicenseKey(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	service := NewLoggerService(cfg)
	if service.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	service.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Fatal("nil service should report no application")
	}
}

func TestNewLoggerProductionJSON(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "production"
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	logger := newLogger(cfg, nil, &buf)

	logger.Info().Msg("dropped")
	logger.Warn().Msg("kept")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "kept" {
		t.Fatalf("message = %v", entry["message"])
	}
	if entry["service"] != config.ServiceName || entry["environment"] != "production" {
		t.Fatalf("missing service fields: %v", entry)
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := WithTraceContext(zerolog.New(&buf), nil)
	logger.Info().Msg("x")

	if bytes.Contains(buf.Bytes(), []byte("trace.id")) {
		t.Fatal("no trace fields expected without a transaction")
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	t.Parallel()

	tests := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}

	for level, want := range tests {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(level)); got != want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", level, got, want)
		}
	}
}
