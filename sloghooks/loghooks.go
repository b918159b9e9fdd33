// Package sloghooks implements basecodec.Hooks on top of log/slog with
// sampling for the high-volume events.
package sloghooks

import (
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/zeebo/blake3"

	"github.com/unkn0wn-root/basecodec"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	InvalidCharEvery uint64
	SizeRejectEvery  uint64
	// Optional storage key redactor. Defaults to a BLAKE3 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	invalidCharCtr atomic.Uint64
	sizeRejectCtr  atomic.Uint64
}

var _ basecodec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := blake3.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SizeRejected(op basecodec.Op, enc basecodec.Encoding, n, max int) {
	if h.l == nil || !sample(h.opts.SizeRejectEvery, &h.sizeRejectCtr) {
		return
	}
	h.l.Info("basecodec.size_rejected",
		"op", string(op),
		"encoding", enc.String(),
		"len", n,
		"max", max)
}

// InvalidCharacter logs the position only; the character itself may be
// part of a secret.
func (h *Hooks) InvalidCharacter(enc basecodec.Encoding, _ rune, pos int) {
	if h.l == nil || !sample(h.opts.InvalidCharEvery, &h.invalidCharCtr) {
		return
	}
	h.l.Debug("basecodec.invalid_character",
		"encoding", enc.String(),
		"pos", pos)
}

func (h *Hooks) ConversionFailed(op basecodec.Op, enc basecodec.Encoding, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("basecodec.conversion_failed",
		"op", string(op),
		"encoding", enc.String(),
		"err", err)
}

func (h *Hooks) StoreSelfHeal(storageKey, reason string) {
	if h.l == nil {
		return
	}
	h.l.Warn("basecodec.store_self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}
