package module

import (
	"time"

	"setlist/internal/core/textrank"
	"setlist/internal/platform/config"
	"setlist/internal/services/api/suggest/cache"
	"setlist/internal/services/api/suggest/domain"
	"setlist/internal/services/api/suggest/service"
)

// Options controls suggestion pipeline tuning and the upstream gateway
type Options struct {
	Gateway domain.Gateway // required

	Service service.Config
	Cache   cache.Config
}

// FromConfig reads SUGGEST_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SUGGEST_")
	d := service.DefaultConfig()
	dc := cache.DefaultConfig()
	return Options{
		Service: service.Config{
			Weights: textrank.Weights{
				OfficialBonus:  sc.MayFloat64("BOOST_OFFICIAL", d.Weights.OfficialBonus),
				OverlapBonus:   sc.MayFloat64("BOOST_OVERLAP", d.Weights.OverlapBonus),
				ChannelBonus:   sc.MayFloat64("BOOST_CHANNEL", d.Weights.ChannelBonus),
				ViewPriorScale: sc.MayFloat64("VIEW_PRIOR_SCALE", d.Weights.ViewPriorScale),
				ViewPriorCap:   sc.MayFloat64("VIEW_PRIOR_CAP", d.Weights.ViewPriorCap),
				MinDuration:    sc.MayDuration("MIN_DURATION", d.Weights.MinDuration),
			},
			RelatedLimit:     sc.MayInt("RELATED_LIMIT", d.RelatedLimit),
			PerSeedTop:       sc.MayInt("PER_SEED_TOP", d.PerSeedTop),
			FinalTop:         sc.MayInt("FINAL_TOP", d.FinalTop),
			MinScore:         sc.MayFloat64("MIN_SCORE", d.MinScore),
			MemoSize:         sc.MayInt("MEMO_SIZE", d.MemoSize),
			FallbackCategory: sc.MayString("FALLBACK_CATEGORY", d.FallbackCategory),
			FallbackLimit:    sc.MayInt("FALLBACK_LIMIT", d.FallbackLimit),
		},
		Cache: cache.Config{
			TTL:         sc.MayDuration("CACHE_TTL", dc.TTL),
			FastTimeout: sc.MayDuration("CACHE_FAST_TIMEOUT", dc.FastTimeout),
			SweepEvery:  sc.MayDuration("CACHE_SWEEP_EVERY", time.Minute),
		},
	}
}
