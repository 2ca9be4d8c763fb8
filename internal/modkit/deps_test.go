package modkit

import (
	"bytes"
	"testing"

	"showcase/internal/platform/logger"

	"github.com/rs/zerolog"
)

func TestDeps_LoggerUsesInjected(t *testing.T) {
	var buf bytes.Buffer
	l := logger.Logger(zerolog.New(&buf))
	d := Deps{Log: &l}

	d.Logger("widget").Info().Msg("hello")
	if !bytes.Contains(buf.Bytes(), []byte(`"component":"widget"`)) {
		t.Fatalf("component missing: %s", buf.String())
	}
}

func TestDeps_LoggerFallsBack(t *testing.T) {
	if (Deps{}).Logger("x") == nil {
		t.Fatal("expected a fallback logger")
	}
}
