package zap

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/basecodec"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCodecRejectionsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := basecodec.New(basecodec.Options{Logger: ZapLogger{L: zap.New(core)}})

	if _, err := c.DecodeString(basecodec.Base58, "10"); !errors.Is(err, basecodec.ErrInvalidCharacter) {
		t.Fatalf("expected invalid character, got %v", err)
	}
	entries := logs.FilterMessage("decode rejected (invalid character)").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["char"] != "0" || ctx["pos"] != int64(1) || ctx["encoding"] != "base58" {
		t.Fatalf("unexpected fields: %v", ctx)
	}
}

func TestErrorFieldsAreNamedErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := ZapLogger{L: zap.New(core)}
	l.Warn("w", basecodec.Fields{"err": errors.New("boom")})
	e := logs.All()[0]
	if len(e.Context) != 1 || e.Context[0].Type != zapcore.ErrorType {
		t.Fatalf("expected an error field, got %+v", e.Context)
	}
}
