package paysim

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Report summarizes one simulation run.
type Report struct {
	Payments      int
	Settled       int
	Declined      int
	Invalid       int
	TotalVolume   float64 // settled amounts, summed across currencies
	FlaggedVolume float64
	Blocks        int
	Stamps        []Stamp
	ChainValid    bool
}

// Engine wires the generator, scorer, ledger, and auditor together and
// runs the simulation with a pool of scoring workers.
type Engine struct {
	cfg     Config
	log     *zap.Logger
	gen     *Generator
	scorer  *Scorer
	ledger  *Ledger
	auditor *Auditor
}

// NewEngine validates the config and assembles an Engine. A nil logger
// falls back to zap.NewNop.
func NewEngine(cfg Config, log *zap.Logger) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		cfg:     cfg,
		log:     log,
		gen:     NewGenerator(cfg),
		scorer:  NewScorer(cfg),
		ledger:  NewLedger(cfg.Difficulty, cfg.BlockSize),
		auditor: NewAuditor(cfg.Seed + 2),
	}, nil
}

// Run produces, scores, and settles cfg.Payments payments, then seals the
// chain, stamps every block, and verifies the whole thing. Run returns
// early with ctx.Err() if the context is canceled; the report reflects
// whatever completed.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	var (
		mu     sync.Mutex
		report Report
	)

	payments := make(chan Payment)

	g, ctx := errgroup.WithContext(ctx)

	// single producer; the generator is not concurrency-safe
	g.Go(func() error {
		defer close(payments)

		for i := 0; i < e.cfg.Payments; i++ {
			select {
			case payments <- e.gen.Next():
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	for w := 0; w < e.cfg.Workers; w++ {
		g.Go(func() error {
			for p := range payments {
				if err := ctx.Err(); err != nil {
					return err
				}

				e.settle(p, &mu, &report)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return &report, err
	}

	if b := e.ledger.Seal(); b != nil {
		e.log.Info("block sealed",
			zap.Int("index", b.Index),
			zap.Int("payments", len(b.Payments)),
			zap.Uint64("nonce", b.Nonce))
	}

	for _, b := range e.ledger.Blocks()[1:] {
		report.Stamps = append(report.Stamps, e.auditor.Stamp(b))
	}
	report.Blocks = e.ledger.Height()

	if err := e.ledger.Validate(); err != nil {
		e.log.Error("chain validation failed", zap.Error(err))
	} else {
		report.ChainValid = true
	}

	return &report, nil
}

// settle runs one payment through validation, scoring, and the ledger.
func (e *Engine) settle(p Payment, mu *sync.Mutex, report *Report) {
	mu.Lock()
	report.Payments++
	mu.Unlock()

	if err := p.Validate(e.cfg.Currencies); err != nil {
		e.log.Warn("payment rejected", zap.Error(err))

		mu.Lock()
		report.Invalid++
		mu.Unlock()
		return
	}

	res := e.scorer.Score(p)

	if res.Flagged {
		p.Status = StatusDeclined
		e.log.Debug("payment declined",
			zap.String("id", p.ID),
			zap.Float64("risk", res.RiskScore),
			zap.Strings("reasons", res.Reasons))

		mu.Lock()
		report.Declined++
		report.FlaggedVolume += p.Amount
		mu.Unlock()
		return
	}

	p.Status = StatusSettled
	sealed := e.ledger.Add(p)

	mu.Lock()
	report.Settled++
	report.TotalVolume += p.Amount
	mu.Unlock()

	e.log.Debug("payment settled",
		zap.String("id", p.ID),
		zap.String("merchant", p.MerchantID),
		zap.Float64("amount", p.Amount),
		zap.Float64("risk", res.RiskScore))

	if sealed != nil {
		e.log.Info("block sealed",
			zap.Int("index", sealed.Index),
			zap.Int("payments", len(sealed.Payments)),
			zap.Uint64("nonce", sealed.Nonce))
	}
}

// Ledger exposes the chain for inspection after a run.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Auditor exposes the auditor, for verifying stamps from a report.
func (e *Engine) Auditor() *Auditor {
	return e.auditor
}
