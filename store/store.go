// Package store is a content-addressed value cache whose keys are display ids.
//
// Put serializes a value with its codec.Codec[V], hashes the bytes with BLAKE3
// and renders the digest with basecodec, so every value gets a short,
// copy-pasteable id (44 Base58 characters at most for the full 32-byte digest).
// Equal payloads always get equal ids.
//
// Keys:
//
//	cas:<ns>:<id>
//
// Reads verify the envelope and recompute the digest. Entries that fail are
// deleted (self-heal) and reported as misses, never returned.
//
// Like any cache, a provider may evict or refuse entries: Get can miss for an
// id that Put returned.
package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/unkn0wn-root/basecodec"
	"github.com/unkn0wn-root/basecodec/codec"
	"github.com/unkn0wn-root/basecodec/internal/util"
	"github.com/unkn0wn-root/basecodec/internal/wire"
	pr "github.com/unkn0wn-root/basecodec/provider"
)

const (
	keyPrefix = "cas"

	DefaultIDSize = 32
	MinIDSize     = 8
)

var ErrInvalidID = errors.New("store: invalid id")

type SetCostFunc func(key string, raw []byte) int64

// Options configure a Store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "blob", "manifest"
	Provider  pr.Provider
	Codec     codec.Codec[V]

	Encoding       basecodec.Encoding // 0 => Base58
	IDSize         int                // digest bytes kept in ids; 0 => 32; [8, 32]
	TTL            time.Duration      // 0 => no expiry
	ComputeSetCost SetCostFunc        // default len(raw)
	BaseCodec      *basecodec.Codec   // nil => basecodec.Default()
	Logger         basecodec.Logger   // if nil, NopLogger is used
	Hooks          basecodec.Hooks    // if nil, NopHooks is used
}

type Store[V any] struct {
	ns       string
	provider pr.Provider
	vc       codec.Codec[V]
	enc      basecodec.Encoding
	idSize   int
	ttl      time.Duration
	cost     SetCostFunc
	bc       *basecodec.Codec
	log      basecodec.Logger
	hooks    basecodec.Hooks
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, errors.New("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, errors.New("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("store: namespace is required")
	}

	s := &Store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		vc:       opts.Codec,
		ttl:      opts.TTL,
	}

	// defaults
	s.enc = opts.Encoding
	if s.enc == 0 {
		s.enc = basecodec.Base58
	}
	if !s.enc.Valid() {
		return nil, &basecodec.UnsupportedEncodingError{Encoding: s.enc}
	}
	s.idSize = opts.IDSize
	if s.idSize == 0 {
		s.idSize = DefaultIDSize
	}
	if s.idSize < MinIDSize || s.idSize > DefaultIDSize {
		return nil, fmt.Errorf("store: IDSize %d out of range [%d, %d]", s.idSize, MinIDSize, DefaultIDSize)
	}
	s.bc = opts.BaseCodec
	if s.bc == nil {
		s.bc = basecodec.Default()
	}
	s.log = opts.Logger
	if s.log == nil {
		s.log = basecodec.NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = basecodec.NopHooks{}
	}
	s.cost = opts.ComputeSetCost
	if s.cost == nil {
		s.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return s, nil
}

func (s *Store[V]) Encoding() basecodec.Encoding { return s.enc }

// ID returns the id v would be stored under, without storing it.
func (s *Store[V]) ID(v V) (basecodec.EncodedString, error) {
	_, id, _, err := s.prepare(v)
	return id, err
}

// Put stores v and returns its id.
func (s *Store[V]) Put(ctx context.Context, v V) (basecodec.EncodedString, error) {
	payload, id, digest, err := s.prepare(v)
	if err != nil {
		return basecodec.EncodedString{}, err
	}
	raw, err := wire.EncodeEntry(wire.Entry{Encoding: byte(s.enc), Digest: digest, Payload: payload})
	if err != nil {
		return basecodec.EncodedString{}, err
	}
	k := s.storageKey(id)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw), s.ttl)
	if err != nil {
		return basecodec.EncodedString{}, err
	}
	if !ok {
		s.log.Debug("Put rejected by provider (pressure)", basecodec.Fields{"id": id.String()})
	}
	return id, nil
}

// Get returns the value stored under id. A malformed id fails with an error
// matching ErrInvalidID; a missing or self-healed entry is (zero, false, nil).
func (s *Store[V]) Get(ctx context.Context, id basecodec.EncodedString) (V, bool, error) {
	var zero V
	digest, err := s.digestOf(id)
	if err != nil {
		return zero, false, err
	}
	k := s.storageKey(id)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}

	e, err := wire.DecodeEntry(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return zero, false, nil
	}
	if e.Encoding != byte(s.enc) || !bytes.Equal(e.Digest, digest) || !bytes.Equal(s.sum(e.Payload), digest) {
		s.selfHeal(ctx, k, "digest_mismatch")
		return zero, false, nil
	}
	v, err := s.vc.Decode(e.Payload)
	if err != nil {
		s.selfHeal(ctx, k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

func (s *Store[V]) Delete(ctx context.Context, id basecodec.EncodedString) error {
	if _, err := s.digestOf(id); err != nil {
		return err
	}
	return s.provider.Del(ctx, s.storageKey(id))
}

// ParseID validates a user-supplied id string for this store.
func (s *Store[V]) ParseID(str string) (basecodec.EncodedString, error) {
	id := basecodec.NewEncodedString(s.enc, str)
	if _, err := s.digestOf(id); err != nil {
		return basecodec.EncodedString{}, err
	}
	return id, nil
}

func (s *Store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *Store[V]) prepare(v V) (payload []byte, id basecodec.EncodedString, digest []byte, err error) {
	payload, err = s.vc.Encode(v)
	if err != nil {
		s.hooks.ConversionFailed(basecodec.OpEncode, s.enc, err)
		return nil, basecodec.EncodedString{}, nil, &basecodec.ConversionError{Op: basecodec.OpEncode, Encoding: s.enc, Err: err}
	}
	digest = s.sum(payload)
	id, err = s.bc.Encode(s.enc, digest)
	if err != nil {
		return nil, basecodec.EncodedString{}, nil, err
	}
	return payload, id, digest, nil
}

// digestOf decodes id back to the digest it names. Ids of another encoding
// or of the wrong length are rejected.
func (s *Store[V]) digestOf(id basecodec.EncodedString) ([]byte, error) {
	if id.Encoding() != s.enc {
		return nil, fmt.Errorf("%w: encoding %s, store uses %s", ErrInvalidID, id.Encoding(), s.enc)
	}
	digest, err := s.bc.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}
	if len(digest) != s.idSize {
		return nil, fmt.Errorf("%w: %d digest bytes, want %d", ErrInvalidID, len(digest), s.idSize)
	}
	return digest, nil
}

func (s *Store[V]) sum(payload []byte) []byte {
	d := blake3.Sum256(payload)
	return d[:s.idSize]
}

func (s *Store[V]) selfHeal(ctx context.Context, storageKey, reason string) {
	_ = s.provider.Del(ctx, storageKey)
	s.hooks.StoreSelfHeal(storageKey, reason)
	s.log.Warn("store entry self-healed", basecodec.Fields{"key": storageKey, "reason": reason})
}

func (s *Store[V]) storageKey(id basecodec.EncodedString) string {
	// isolate by namespace
	return util.StorageKey(keyPrefix, s.ns, id.String())
}
