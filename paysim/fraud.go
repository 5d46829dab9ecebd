package paysim

import (
	"math"
	"math/rand"
	"sync"

	"github.com/whitmore/dabble/randutil"
)

// FraudResult is the scorer's verdict on one payment. The score is
// synthetic: a uniform draw nudged by a few cosmetic signals. There is no
// model behind it.
type FraudResult struct {
	RiskScore float64
	Flagged   bool
	Reasons   []string
}

var fraudReasons = []string{
	"velocity anomaly",
	"amount outlier for merchant",
	"geo mismatch",
	"device fingerprint reuse",
	"first-seen customer",
	"unusual hour for customer",
}

// Scorer assigns risk scores. Safe for concurrent use.
type Scorer struct {
	threshold  float64
	highAmount float64 // p95 of the amount range; amounts above it pick up a risk nudge

	mu  sync.Mutex
	src *rand.Rand
}

// NewScorer builds a Scorer from the config. The high-amount cutoff sits
// at the 95th percentile of the configured amount range.
func NewScorer(cfg Config) *Scorer {
	return &Scorer{
		threshold:  cfg.FraudThreshold,
		highAmount: cfg.AmountMin + 0.95*(cfg.AmountMax-cfg.AmountMin),
		src:        randutil.Seeded(cfg.Seed + 1),
	}
}

// Score draws a base risk uniformly, adds small nudges for "suspicious"
// shapes, and flags the payment if the result clears the threshold.
// Flagged payments get one to three reasons sampled from a fixed list.
func (s *Scorer) Score(p Payment) FraudResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	risk := s.src.Float64() * 0.9

	if p.Amount >= s.highAmount {
		risk += 0.15
	}
	if p.Method == "crypto" {
		risk += 0.05
	}
	risk = math.Min(risk, 1.0)

	res := FraudResult{RiskScore: risk, Flagged: risk >= s.threshold}

	if res.Flagged {
		n := randutil.Int(s.src, 1, 3)
		for i := 0; i < n; i++ {
			reason, _ := randutil.Choice(s.src, fraudReasons)
			res.Reasons = append(res.Reasons, reason)
		}
	}

	return res
}

// Threshold returns the decision cutoff the Scorer was built with.
func (s *Scorer) Threshold() float64 {
	return s.threshold
}
