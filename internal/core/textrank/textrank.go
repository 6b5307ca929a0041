// Package textrank scores candidate similarity to a seed over per-batch
// TF-IDF vectors plus capped heuristic boosts. Pure computation, no I/O
package textrank

import (
	"math"
	"strings"
	"time"
)

// Doc is the text surface of one seed or candidate
type Doc struct {
	ID        string
	Title     string
	Channel   string
	ChannelID string
	Text      string // concatenated description, tags, etc
	Views     uint64
	Duration  time.Duration
}

// Scored pairs a Doc with its final score in [0,1]
type Scored struct {
	Doc   Doc
	Score float64
}

// officialPhrases are checked against the folded candidate title
var officialPhrases = []string{
	"official video",
	"official music video",
	"official audio",
}

// ScoreBatch ranks cands against seed.
// Candidates shorter than w.MinDuration are dropped before scoring.
// Empty input returns an empty slice, never an error
func ScoreBatch(seed Doc, cands []Doc, w Weights) []Scored {
	if len(cands) == 0 {
		return nil
	}

	kept := make([]Doc, 0, len(cands))
	for _, c := range cands {
		if w.MinDuration > 0 && c.Duration > 0 && c.Duration < w.MinDuration {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil
	}

	// per-batch vocabulary; idf is recomputed every call
	corpus := make([][]string, 0, len(kept)+1)
	corpus = append(corpus, Tokenize(seed.Title+" "+seed.Channel+" "+seed.Text))
	for _, c := range kept {
		corpus = append(corpus, Tokenize(c.Title+" "+c.Channel+" "+c.Text))
	}

	vecs := tfidf(corpus)
	seedVec := vecs[0]
	seedTitle := Tokenize(seed.Title)

	out := make([]Scored, 0, len(kept))
	for i, c := range kept {
		score := cosine(seedVec, vecs[i+1])
		score += boosts(seed, seedTitle, c, w)
		if score > 1 {
			score = 1
		}
		if score < 0 {
			score = 0
		}
		out = append(out, Scored{Doc: c, Score: score})
	}
	return out
}

func boosts(seed Doc, seedTitle []string, c Doc, w Weights) float64 {
	var b float64

	title := Fold(c.Title)
	for _, p := range officialPhrases {
		if strings.Contains(title, p) {
			b += w.OfficialBonus
			break
		}
	}

	if r := overlapRatio(seedTitle, Tokenize(c.Title)); r > 0 {
		b += w.OverlapBonus * r
	}

	if sameChannel(seed, c) {
		b += w.ChannelBonus
	}

	if c.Views > 0 && w.ViewPriorScale > 0 {
		prior := w.ViewPriorScale * math.Log1p(float64(c.Views))
		if prior > w.ViewPriorCap {
			prior = w.ViewPriorCap
		}
		b += prior
	}
	return b
}

func sameChannel(a, b Doc) bool {
	if a.ChannelID != "" && b.ChannelID != "" {
		return a.ChannelID == b.ChannelID
	}
	return a.Channel != "" && Fold(a.Channel) == Fold(b.Channel)
}

// overlapRatio is |seed ∩ cand| / |seed| over unique title tokens
func overlapRatio(seed, cand []string) float64 {
	if len(seed) == 0 || len(cand) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(seed))
	for _, t := range seed {
		set[t] = struct{}{}
	}
	seen := make(map[string]struct{}, len(cand))
	hits := 0
	for _, t := range cand {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := set[t]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(set))
}

// tfidf builds smooth-idf weighted term vectors for each document
func tfidf(docs [][]string) []map[string]float64 {
	n := float64(len(docs))
	df := map[string]int{}
	for _, d := range docs {
		seen := map[string]struct{}{}
		for _, t := range d {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	vecs := make([]map[string]float64, len(docs))
	for i, d := range docs {
		tf := map[string]float64{}
		for _, t := range d {
			tf[t]++
		}
		v := make(map[string]float64, len(tf))
		for t, f := range tf {
			idf := math.Log((1+n)/(1+float64(df[t]))) + 1
			v[t] = f * idf
		}
		vecs[i] = v
	}
	return vecs
}

// cosine over sparse non-negative vectors; zero vectors score 0
func cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var dot, na, nb float64
	for t, av := range a {
		na += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
