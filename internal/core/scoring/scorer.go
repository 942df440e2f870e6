// Package scoring runs the randomized Naive-Bayes inference over n-gram evidence
//
// Each trial starts from the prior, jitters the smoothing strength, walks the
// known n-grams in a shuffled order and multiplies every language's probability
// by (alpha'/BaseFreq + p(gram|lang)), renormalizing after each update. Trials
// stop early once the leader passes the convergence threshold or stalls. The
// final distribution is the mean of all trials.
package scoring

import (
	"math"

	perr "langdetect/internal/platform/errors"
)

var (
	// ErrNoFeatures is returned when no gram of the input is known to the table
	ErrNoFeatures = perr.New(perr.ErrorCodeNoFeatures, "scoring: no known n-gram in input")

	// ErrNoLanguages is returned for a table without languages
	ErrNoLanguages = perr.New(perr.ErrorCodeEmptyRegistry, "scoring: no languages")
)

// Table is the read side of a profile registry
type Table interface {
	Len() int
	Probabilities(gram string) ([]float64, bool)
}

// Evidence resolves grams against t, dropping the unknown ones
func Evidence(grams []string, t Table) [][]float64 {
	out := make([][]float64, 0, len(grams))
	for _, g := range grams {
		if p, ok := t.Probabilities(g); ok {
			out = append(out, p)
		}
	}
	return out
}

// Score returns one probability per language of t, summing to 1
// prior may be nil for a uniform start; src supplies all randomness
func Score(grams []string, t Table, prior []float64, src Source, cfg Config) ([]float64, error) {
	n := t.Len()
	if n == 0 {
		return nil, ErrNoLanguages
	}
	ev := Evidence(grams, t)
	if len(ev) == 0 {
		return nil, ErrNoFeatures
	}
	start, err := initial(prior, n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []float64{1}, nil
	}

	cfg = cfg.orDefaults()
	trials := cfg.Trials
	out := make([]float64, n)
	prob := make([]float64, n)
	next := make([]float64, n)
	order := make([]int, len(ev))

	for range trials {
		// explicit conversion keeps the product from fusing into an FMA
		alpha := cfg.Alpha + float64(src.NormFloat64()*cfg.AlphaWidth)
		weight := max(alpha, 0) / cfg.BaseFreq

		copy(prob, start)
		for i := range order {
			order[i] = i
		}
		shuffle(src, order)

		runTrial(prob, next, ev, order, weight, src, cfg)

		for j, v := range prob {
			out[j] += v
		}
	}
	for j := range out {
		out[j] /= float64(trials)
	}
	return out, nil
}

func runTrial(prob, next []float64, ev [][]float64, order []int, weight float64, src Source, cfg Config) {
	interval := cfg.CheckInterval
	last := maxOf(prob)
	for i := range cfg.IterationLimit {
		k := i % len(order)
		if i > 0 && k == 0 {
			shuffle(src, order)
		}
		update(prob, next, ev[order[k]], weight)

		if (i+1)%interval != 0 {
			continue
		}
		lead := maxOf(prob)
		if lead > cfg.ConvergenceThreshold {
			return
		}
		if cfg.StallEpsilon > 0 && math.Abs(lead-last) <= cfg.StallEpsilon {
			return
		}
		last = lead
	}
}

// update applies one Bayesian step; a step that would zero the vector is skipped
func update(prob, next, p []float64, weight float64) {
	sum := 0.0
	for j := range prob {
		next[j] = prob[j] * (weight + p[j])
		sum += next[j]
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return
	}
	for j := range prob {
		prob[j] = next[j] / sum
	}
}

// initial returns the normalized prior or a uniform vector
func initial(prior []float64, n int) ([]float64, error) {
	out := make([]float64, n)
	if prior == nil {
		for j := range out {
			out[j] = 1 / float64(n)
		}
		return out, nil
	}
	if len(prior) != n {
		return nil, perr.InvalidArgf("scoring: prior has %d entries, want %d", len(prior), n)
	}
	sum := 0.0
	for j, v := range prior {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, perr.InvalidArgf("scoring: prior[%d] = %v", j, v)
		}
		sum += v
	}
	if sum == 0 {
		return nil, perr.InvalidArgf("scoring: prior sums to zero")
	}
	for j, v := range prior {
		out[j] = v / sum
	}
	return out, nil
}

func maxOf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
