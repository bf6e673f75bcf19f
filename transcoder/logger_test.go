package transcoder

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultIsNop(t *testing.T) {
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
}

func TestLogger_DecodeFaultEmitted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	cps := NewCodePoints([]byte{'a', 0xC2, 0x20})
	for cps.Next() {
	}
	if cps.Err() == nil {
		t.Fatal("expected a decode fault")
	}

	entries := logs.FilterMessage("decode fault").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d decode fault entries, want 1", len(entries))
	}
	if pos, ok := entries[0].ContextMap()["pos"]; !ok || pos != int64(1) {
		t.Errorf("logged pos = %v, want 1", pos)
	}
}
