// Package cache layers the aggregate suggestion result over a fast
// redis tier, a process-local TTL tier, and singleflight compute
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"

	pcache "setlist/internal/platform/cache"
	"setlist/internal/platform/logger"
	"setlist/internal/platform/store"
	"setlist/internal/services/api/suggest/domain"
)

// Config tunes the cache tiers
type Config struct {
	TTL time.Duration // shared by both tiers

	// FastTimeout bounds every redis call; a timeout reads as a miss
	FastTimeout time.Duration

	// SweepEvery drives the local tier's background sweep
	SweepEvery time.Duration
}

// DefaultConfig returns the stock cache tuning
func DefaultConfig() Config {
	return Config{
		TTL:         15 * time.Minute,
		FastTimeout: 250 * time.Millisecond,
		SweepEvery:  time.Minute,
	}
}

// Suggester wraps an inner suggestion service with the tier hierarchy
type Suggester struct {
	inner domain.ServicePort
	kv    store.KV // nil when redis is not configured
	local *pcache.TTL[[]byte]
	sf    singleflight.Group
	cfg   Config
	log   logger.Logger
}

// New builds the cached suggester. kv may be nil
func New(inner domain.ServicePort, kv store.KV, cfg Config) *Suggester {
	if inner == nil {
		panic("suggest cache requires a non nil inner service")
	}
	d := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = d.TTL
	}
	if cfg.FastTimeout <= 0 {
		cfg.FastTimeout = d.FastTimeout
	}
	if cfg.SweepEvery <= 0 {
		cfg.SweepEvery = d.SweepEvery
	}
	return &Suggester{
		inner: inner,
		kv:    kv,
		local: pcache.NewTTL[[]byte](cfg.SweepEvery),
		cfg:   cfg,
		log:   *logger.Named("suggest.cache"),
	}
}

// Close stops the local tier sweep
func (s *Suggester) Close() { s.local.Close() }

// Key derives the deterministic cache key for a seed set: hex SHA-256
// over the sorted, folded, deduplicated seeds
func Key(seeds []string) string {
	norm := make([]string, 0, len(seeds))
	seen := map[string]struct{}{}
	for _, in := range seeds {
		n := domain.NormalizeSeed(in)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		norm = append(norm, n)
	}
	sort.Strings(norm)

	h := sha256.New()
	for _, n := range norm {
		h.Write([]byte(n))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Suggest consults the fast tier, then the local tier, then computes.
// Tier outages degrade to the next tier and never fail the request
func (s *Suggester) Suggest(ctx context.Context, seeds []string) (domain.Suggestions, error) {
	key := Key(seeds)

	if out, ok := s.fromFast(ctx, key); ok {
		return out, nil
	}

	if raw, ok := s.local.Get(key); ok {
		var out domain.Suggestions
		if err := json.Unmarshal(raw, &out); err == nil {
			// local hits repopulate redis so other replicas benefit
			s.backfillFast(ctx, key, raw)
			return out, nil
		}
		s.local.Delete(key)
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		out, err := s.inner.Suggest(ctx, seeds)
		if err != nil {
			return domain.Suggestions{}, err
		}
		s.write(ctx, key, out)
		return out, nil
	})
	if err != nil {
		return domain.Suggestions{}, err
	}
	return v.(domain.Suggestions), nil
}

// fromFast reads the redis tier; unreachable means degraded, not failed
func (s *Suggester) fromFast(ctx context.Context, key string) (domain.Suggestions, bool) {
	if s.kv == nil {
		return domain.Suggestions{}, false
	}
	tctx, cancel := context.WithTimeout(ctx, s.cfg.FastTimeout)
	defer cancel()

	raw, found, err := s.kv.Get(tctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("fast tier unreachable, degrading")
		return domain.Suggestions{}, false
	}
	if !found {
		return domain.Suggestions{}, false
	}
	var out domain.Suggestions
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn().Err(err).Msg("fast tier payload corrupt, recomputing")
		return domain.Suggestions{}, false
	}
	// keep the local tier warm too
	s.local.Set(key, raw, s.cfg.TTL)
	return out, true
}

// write stores a fresh result in both tiers, best effort on redis
func (s *Suggester) write(ctx context.Context, key string, out domain.Suggestions) {
	raw, err := json.Marshal(out)
	if err != nil {
		s.log.Error().Err(err).Msg("suggestion encode failed, caching skipped")
		return
	}
	s.local.Set(key, raw, s.cfg.TTL)
	s.backfillFast(ctx, key, raw)
}

func (s *Suggester) backfillFast(ctx context.Context, key string, raw []byte) {
	if s.kv == nil {
		return
	}
	tctx, cancel := context.WithTimeout(ctx, s.cfg.FastTimeout)
	defer cancel()
	if err := s.kv.Set(tctx, key, raw, s.cfg.TTL); err != nil {
		s.log.Warn().Err(err).Msg("fast tier write failed")
	}
}
