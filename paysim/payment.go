// Package paysim simulates a small payment network end to end: a generator
// invents payments, a fraud scorer assigns them synthetic risk, settled
// payments are sealed into a toy proof-of-work chain, and an auditor
// stamps the blocks. None of it is real — risk scores are shaped random
// draws, mining is a nonce search against an easy target, and "audit"
// means recomputing a digest locally. The point is the plumbing, not the
// protocol.
package paysim

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/whitmore/dabble/randutil"
)

// Status is a payment's position in its lifecycle.
type Status string

const (
	StatusPending  Status = "pending"
	StatusSettled  Status = "settled"
	StatusDeclined Status = "declined"
)

// the ways a payment can nominally be made
var methods = []string{"card", "bank_transfer", "wallet", "crypto"}

// Payment is one simulated transaction.
type Payment struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	CustomerID string    `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	Method     string    `json:"method"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate applies the same checks a real intake would: positive amount,
// known currency, identified parties.
func (p Payment) Validate(currencies []string) error {
	if p.Amount <= 0 || math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) {
		return errors.Errorf("payment %s: amount %v must be positive", p.ID, p.Amount)
	}

	var known bool
	for _, c := range currencies {
		if p.Currency == c {
			known = true
			break
		}
	}
	if !known {
		return errors.Errorf("payment %s: unknown currency %q", p.ID, p.Currency)
	}

	if p.MerchantID == "" {
		return errors.Errorf("payment %s: merchant is required", p.ID)
	}
	if p.CustomerID == "" {
		return errors.Errorf("payment %s: customer is required", p.ID)
	}

	return nil
}

// Generator invents payments from a config's pools. Not safe for
// concurrent use; the engine runs one per producer.
type Generator struct {
	cfg Config
	src *rand.Rand
	now time.Time
}

// NewGenerator returns a Generator seeded from the config. Timestamps
// advance deterministically from a fixed start so runs are comparable.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg: cfg,
		src: randutil.Seeded(cfg.Seed),
		now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Next returns one new pending payment.
func (g *Generator) Next() Payment {
	merchant, _ := randutil.Choice(g.src, g.cfg.Merchants)
	currency, _ := randutil.Choice(g.src, g.cfg.Currencies)
	method, _ := randutil.Choice(g.src, methods)

	g.now = g.now.Add(time.Duration(randutil.Int(g.src, 1, 90)) * time.Second)

	return Payment{
		// draw the ID from the seeded source too, so identically-seeded
		// runs produce identical chains
		ID:         uuid.Must(uuid.NewRandomFromReader(g.src)).String(),
		MerchantID: merchant,
		CustomerID: customerID(randutil.Int(g.src, 1, g.cfg.Customers)),
		Amount:     round2(randutil.Float(g.src, g.cfg.AmountMin, g.cfg.AmountMax)),
		Currency:   currency,
		Method:     method,
		Status:     StatusPending,
		CreatedAt:  g.now,
	}
}

func customerID(n int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte{byte(n), byte(n >> 8)}).String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
