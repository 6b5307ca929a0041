// Package service contains the suggestion aggregation workflow
package service

import (
	"context"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"setlist/internal/core/textrank"
	"setlist/internal/modkit/repokit"
	perr "setlist/internal/platform/errors"
	"setlist/internal/platform/logger"
	"setlist/internal/services/api/suggest/domain"
	"setlist/internal/services/api/suggest/repo"
)

// Service defines the service contract for suggestions
type Service interface{ domain.ServicePort }

// Config tunes the aggregation pipeline
type Config struct {
	Weights      textrank.Weights
	RelatedLimit int     // candidates pulled per seed
	PerSeedTop   int     // intermediate cap before merge
	FinalTop     int     // public result cap
	MinScore     float64 // threshold applied after scoring
	MemoSize     int     // bounded per-seed memoization entries

	FallbackCategory string // chart category hint, "10" is music
	FallbackLimit    int
}

// DefaultConfig returns the stock pipeline tuning
func DefaultConfig() Config {
	return Config{
		Weights:          textrank.DefaultWeights(),
		RelatedLimit:     25,
		PerSeedTop:       10,
		FinalTop:         5,
		MinScore:         0.1,
		MemoSize:         256,
		FallbackCategory: "10",
		FallbackLimit:    5,
	}
}

// scoredCand is the per-seed intermediate carried into the merge
type scoredCand struct {
	ID        string
	Title     string
	normTitle string
	Score     float64
}

// Svc implements the Service interface
type Svc struct {
	gw   domain.Gateway
	repo repo.Repo // nil when no durable store is configured
	cfg  Config
	memo *lru.Cache[string, []scoredCand]
	log  logger.Logger
}

// New creates a new suggestion service.
// db may be nil; the durable side caches are opportunistic
func New(gw domain.Gateway, db repokit.TxRunner, binder repokit.Binder[repo.Repo], cfg Config) *Svc {
	if gw == nil {
		panic("suggest.Service requires a non nil Gateway")
	}
	if cfg.RelatedLimit <= 0 || cfg.PerSeedTop <= 0 || cfg.FinalTop <= 0 {
		d := DefaultConfig()
		if cfg.RelatedLimit <= 0 {
			cfg.RelatedLimit = d.RelatedLimit
		}
		if cfg.PerSeedTop <= 0 {
			cfg.PerSeedTop = d.PerSeedTop
		}
		if cfg.FinalTop <= 0 {
			cfg.FinalTop = d.FinalTop
		}
	}
	if cfg.MemoSize <= 0 {
		cfg.MemoSize = DefaultConfig().MemoSize
	}

	var r repo.Repo
	if db != nil && binder != nil {
		r = binder.Bind(db)
	}
	memo, _ := lru.New[string, []scoredCand](cfg.MemoSize)
	return &Svc{
		gw:   gw,
		repo: r,
		cfg:  cfg,
		memo: memo,
		log:  *logger.Named("suggest"),
	}
}

// Suggest runs the full pipeline: dedup seeds, rank related candidates
// per seed, merge, and fall back to the popularity chart when empty
func (s *Svc) Suggest(ctx context.Context, seeds []string) (domain.Suggestions, error) {
	seeds = domain.DedupSeeds(seeds)

	var merged []scoredCand
	for _, seed := range seeds {
		per, err := s.perSeed(ctx, seed)
		if err != nil {
			// a dead seed never kills the request
			s.log.Warn().Err(err).Str("seed", seed).Msg("seed lookup failed, skipping")
			continue
		}
		merged = append(merged, per...)
	}

	final := mergeRank(merged, s.cfg.FinalTop)
	if len(final) == 0 {
		return s.fallback(ctx)
	}
	return domain.Suggestions{Items: final}, nil
}

// perSeed returns the seed's thresholded top candidates, memoized by
// the folded seed text
func (s *Svc) perSeed(ctx context.Context, seed string) ([]scoredCand, error) {
	key := domain.NormalizeSeed(seed)
	if v, ok := s.memo.Get(key); ok {
		return v, nil
	}

	seedCand, err := s.lookupSeed(ctx, key, seed)
	if err != nil {
		return nil, err
	}

	related, err := s.gw.RelatedCandidates(ctx, seedCand.ID, s.cfg.RelatedLimit)
	if err != nil {
		return nil, err
	}
	related = s.enrich(ctx, related)

	docs := make([]textrank.Doc, 0, len(related))
	for _, c := range related {
		if c.ID == seedCand.ID {
			continue
		}
		docs = append(docs, toDoc(c))
	}

	scored := textrank.ScoreBatch(toDoc(seedCand), docs, s.cfg.Weights)
	out := make([]scoredCand, 0, len(scored))
	for _, sc := range scored {
		if sc.Score < s.cfg.MinScore {
			continue
		}
		out = append(out, scoredCand{
			ID:        sc.Doc.ID,
			Title:     sc.Doc.Title,
			normTitle: domain.NormalizeSeed(sc.Doc.Title),
			Score:     sc.Score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > s.cfg.PerSeedTop {
		out = out[:s.cfg.PerSeedTop]
	}

	s.memo.Add(key, out)
	return out, nil
}

// lookupSeed resolves a seed text to a candidate, consulting the
// durable query cache before the gateway
func (s *Svc) lookupSeed(ctx context.Context, key, seed string) (domain.Candidate, error) {
	if s.repo != nil {
		if id, err := s.repo.SeedVideoID(ctx, key); err == nil && id != "" {
			if c, ok := s.cachedCandidate(ctx, id); ok {
				return c, nil
			}
		}
	}

	c, err := s.gw.FindSeedCandidate(ctx, seed)
	if err != nil {
		return domain.Candidate{}, err
	}
	if s.repo != nil {
		if err := s.repo.PutSeedVideoID(ctx, key, c.ID); err != nil {
			s.log.Warn().Err(err).Str("seed", seed).Msg("query cache write failed")
		}
	}
	return c, nil
}

// cachedCandidate fetches full metadata for a cached seed id, from the
// durable feature cache first and the gateway second
func (s *Svc) cachedCandidate(ctx context.Context, id string) (domain.Candidate, bool) {
	if feats, err := s.repo.Features(ctx, []string{id}); err == nil {
		if c, ok := feats[id]; ok {
			return c, true
		}
	}
	details, err := s.gw.BatchDetails(ctx, []string{id})
	if err != nil {
		return domain.Candidate{}, false
	}
	c, ok := details[id]
	return c, ok
}

// enrich fills stats and duration for related candidates, using the
// durable feature cache for known ids and the gateway for the rest.
// Failures degrade to the snippet-only candidates
func (s *Svc) enrich(ctx context.Context, cands []domain.Candidate) []domain.Candidate {
	if len(cands) == 0 {
		return cands
	}

	known := map[string]domain.Candidate{}
	if s.repo != nil {
		ids := make([]string, 0, len(cands))
		for _, c := range cands {
			ids = append(ids, c.ID)
		}
		if got, err := s.repo.Features(ctx, ids); err == nil {
			known = got
		}
	}

	var missing []string
	for _, c := range cands {
		if _, ok := known[c.ID]; !ok {
			missing = append(missing, c.ID)
		}
	}

	var fresh []domain.Candidate
	if len(missing) > 0 {
		details, err := s.gw.BatchDetails(ctx, missing)
		if err != nil {
			s.log.Warn().Err(err).Int("ids", len(missing)).Msg("batch details failed, scoring snippets only")
		} else {
			for id, c := range details {
				known[id] = c
				fresh = append(fresh, c)
			}
		}
	}

	if s.repo != nil && len(fresh) > 0 {
		if err := s.repo.PutFeatures(ctx, fresh); err != nil {
			s.log.Warn().Err(err).Msg("feature cache write failed")
		}
	}

	out := make([]domain.Candidate, 0, len(cands))
	for _, c := range cands {
		if full, ok := known[c.ID]; ok {
			out = append(out, full)
			continue
		}
		out = append(out, c)
	}
	return out
}

// fallback returns the most popular chart entry as the sole suggestion
func (s *Svc) fallback(ctx context.Context) (domain.Suggestions, error) {
	chart, err := s.gw.PopularChart(ctx, s.cfg.FallbackCategory, s.cfg.FallbackLimit)
	if err != nil {
		s.log.Warn().Err(err).Msg("popularity fallback failed")
		chart = nil
	}
	var best *domain.Candidate
	for i := range chart {
		if best == nil || chart[i].ViewCount > best.ViewCount {
			best = &chart[i]
		}
	}
	if best == nil {
		return domain.Suggestions{}, perr.Newf(perr.ErrorCodeNoSuggestions, "no suggestions found")
	}
	return domain.Suggestions{
		Items:    []domain.ScoredSuggestion{{VideoID: best.ID, Title: best.Title, Score: 1}},
		Fallback: true,
	}, nil
}

// mergeRank deduplicates by id and by normalized title (max score wins,
// earliest discovery keeps its slot), sorts descending, and truncates
func mergeRank(in []scoredCand, top int) []domain.ScoredSuggestion {
	byID := map[string]int{}
	byTitle := map[string]int{}
	var kept []scoredCand

	for _, c := range in {
		i, idHit := byID[c.ID]
		j, titleHit := byTitle[c.normTitle]

		switch {
		case idHit:
			if c.Score > kept[i].Score {
				kept[i].Score = c.Score
			}
			// the same item may collide on title under a different slot;
			// max score already applied, nothing else to do
		case titleHit:
			if c.Score > kept[j].Score {
				kept[j].Score = c.Score
			}
		default:
			byID[c.ID] = len(kept)
			byTitle[c.normTitle] = len(kept)
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Score > kept[j].Score })
	if len(kept) > top {
		kept = kept[:top]
	}

	out := make([]domain.ScoredSuggestion, 0, len(kept))
	for _, c := range kept {
		out = append(out, domain.ScoredSuggestion{VideoID: c.ID, Title: c.Title, Score: c.Score})
	}
	return out
}

func toDoc(c domain.Candidate) textrank.Doc {
	text := c.Description
	for _, t := range c.Tags {
		text += " " + t
	}
	return textrank.Doc{
		ID:        c.ID,
		Title:     c.Title,
		Channel:   c.Channel,
		ChannelID: c.ChannelID,
		Text:      text,
		Views:     c.ViewCount,
		Duration:  c.Duration,
	}
}
