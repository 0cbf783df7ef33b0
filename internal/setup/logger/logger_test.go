package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewWithOutputLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", &buf)

	if log.GetLevel() != zerolog.WarnLevel {
		t.Errorf("GetLevel() = %v; want %v", log.GetLevel(), zerolog.WarnLevel)
	}

	log.Info().Msg("filtered out")
	log.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "filtered out") {
		t.Error("info message was logged at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn message was not logged")
	}
}

func TestNewWithOutputInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("shouting", &buf)

	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("GetLevel() = %v; want fallback to %v", log.GetLevel(), zerolog.InfoLevel)
	}
}
