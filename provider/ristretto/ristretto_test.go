package ristretto

import (
	"bytes"
	"context"
	"testing"
)

func TestProviderSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close(ctx)

	if _, ok, _ := p.Get(ctx, "cas:t:missing"); ok {
		t.Fatalf("expected miss")
	}
	ok, err := p.Set(ctx, "cas:t:a", []byte("payload"), 7, 0)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	p.Wait()
	b, ok, err := p.Get(ctx, "cas:t:a")
	if err != nil || !ok || !bytes.Equal(b, []byte("payload")) {
		t.Fatalf("Get: %q ok=%v err=%v", b, ok, err)
	}
	if err := p.Del(ctx, "cas:t:a"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "cas:t:a"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for zero config")
	}
}
