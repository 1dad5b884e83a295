package config

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogResolvedOmitsSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := &Config{
		RunAddress:    ":8080",
		DatabaseURI:   "postgres://user:pass@db/app",
		JWTSecret:     "top-secret",
		TokenStrategy: TokenStrategyHMAC,
		KafkaBrokers:  []string{"kafka:9092"},
	}

	logResolved(cfg, zap.New(core))

	entries := logs.FilterMessage("configuration loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["token_strategy"] != TokenStrategyHMAC || fields["kafka"] != true || fields["redis"] != false {
		t.Fatalf("unexpected fields: %v", fields)
	}
	for _, v := range fields {
		if s, ok := v.(string); ok && (strings.Contains(s, "top-secret") || strings.Contains(s, "pass@")) {
			t.Fatalf("secret leaked into log: %v", fields)
		}
	}
}
