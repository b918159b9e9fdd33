package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/basecodec"
)

func newHooks(opts Options) (*Hooks, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(l, opts), &buf
}

func TestSampling(t *testing.T) {
	h, buf := newHooks(Options{InvalidCharEvery: 3})
	for i := 0; i < 9; i++ {
		h.InvalidCharacter(basecodec.Base36, 'X', i)
	}
	if n := strings.Count(buf.String(), "basecodec.invalid_character"); n != 3 {
		t.Fatalf("expected 3 sampled lines, got %d", n)
	}
	if strings.Contains(buf.String(), "X") {
		t.Fatalf("rejected character must not be logged: %s", buf.String())
	}
}

func TestRedactsStorageKeys(t *testing.T) {
	h, buf := newHooks(Options{})
	h.StoreSelfHeal("cas:user:secret", "corrupt")
	if strings.Contains(buf.String(), "secret") {
		t.Fatalf("storage key leaked: %s", buf.String())
	}

	h2, buf2 := newHooks(Options{Redact: func(string) string { return "REDACTED" }})
	h2.StoreSelfHeal("cas:user:secret", "digest_mismatch")
	if !strings.Contains(buf2.String(), "key=REDACTED") {
		t.Fatalf("custom redactor not used: %s", buf2.String())
	}
}

func TestWiredIntoCodec(t *testing.T) {
	h, buf := newHooks(Options{})
	c := basecodec.New(basecodec.Options{MaxInputLen: 1, Hooks: h})
	if _, err := c.Encode(basecodec.Base58, []byte{1, 2}); err == nil {
		t.Fatalf("expected size error")
	}
	h.ConversionFailed(basecodec.OpDecode, basecodec.Base58, errors.New("boom"))
	out := buf.String()
	if !strings.Contains(out, "basecodec.size_rejected") || !strings.Contains(out, "err=boom") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	h := New(nil, Options{})
	h.SizeRejected(basecodec.OpEncode, basecodec.Base36, 2, 1)
	h.StoreSelfHeal("k", "corrupt")
}
