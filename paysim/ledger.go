package paysim

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Block is one sealed batch of settled payments. Hash covers the index,
// timestamp, previous hash, nonce, and payment payload; PrevHash chains
// blocks together.
type Block struct {
	Index    int       `json:"index"`
	Time     time.Time `json:"time"`
	Payments []Payment `json:"payments"`
	PrevHash string    `json:"prev_hash"`
	Nonce    uint64    `json:"nonce"`
	Hash     string    `json:"hash"`
}

// Ledger is an append-only, in-memory chain of Blocks with a pending pool
// of settled payments waiting to be sealed. There is no persistence and no
// peer: "consensus" is recomputing our own hashes.
type Ledger struct {
	difficulty int
	blockSize  int

	mu      sync.Mutex
	blocks  []Block
	pending []Payment
}

// NewLedger returns a Ledger holding only the genesis block.
func NewLedger(difficulty, blockSize int) *Ledger {
	genesis := Block{
		Index:    0,
		Time:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PrevHash: strings.Repeat("0", 64),
	}
	genesis.Hash = hashBlock(genesis)

	return &Ledger{
		difficulty: difficulty,
		blockSize:  blockSize,
		blocks:     []Block{genesis},
	}
}

// Add places a settled payment in the pending pool, sealing a new block
// once the pool reaches the block size. The sealed block (if any) is
// returned.
func (l *Ledger) Add(p Payment) *Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, p)
	if len(l.pending) < l.blockSize {
		return nil
	}

	return l.sealLocked()
}

// Seal flushes any remaining pending payments into a final, possibly
// short, block. Returns nil if nothing is pending.
func (l *Ledger) Seal() *Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pending) == 0 {
		return nil
	}

	return l.sealLocked()
}

func (l *Ledger) sealLocked() *Block {
	prev := l.blocks[len(l.blocks)-1]

	b := Block{
		Index:    prev.Index + 1,
		Time:     lastCreated(l.pending),
		Payments: l.pending,
		PrevHash: prev.Hash,
	}
	l.pending = nil

	mine(&b, l.difficulty)
	l.blocks = append(l.blocks, b)

	return &l.blocks[len(l.blocks)-1]
}

func lastCreated(ps []Payment) time.Time {
	var latest time.Time
	for _, p := range ps {
		if p.CreatedAt.After(latest) {
			latest = p.CreatedAt
		}
	}
	return latest
}

// mine searches nonces sequentially until the block hash meets the
// leading-zeros target. With the toy difficulties used here this takes
// microseconds to milliseconds.
func mine(b *Block, difficulty int) {
	target := strings.Repeat("0", difficulty)
	for nonce := uint64(0); ; nonce++ {
		b.Nonce = nonce
		b.Hash = hashBlock(*b)
		if strings.HasPrefix(b.Hash, target) {
			return
		}
	}
}

// hashBlock digests everything except the hash field itself.
func hashBlock(b Block) string {
	b.Hash = ""
	payload, err := json.Marshal(b)
	if err != nil {
		// Block contains nothing unmarshalable; this cannot happen.
		panic(err)
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Blocks returns a copy of the chain, genesis included.
func (l *Ledger) Blocks() []Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Block(nil), l.blocks...)
}

// Height returns the number of blocks after genesis.
func (l *Ledger) Height() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.blocks) - 1
}

// Validate recomputes every hash and checks the chain links and
// difficulty targets. This local recomputation is the full extent of
// verification here.
func (l *Ledger) Validate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	target := strings.Repeat("0", l.difficulty)

	for i, b := range l.blocks {
		if b.Hash != hashBlock(b) {
			return errors.Errorf("block %d: stored hash does not match contents", b.Index)
		}
		if i == 0 {
			continue
		}

		if b.PrevHash != l.blocks[i-1].Hash {
			return errors.Errorf("block %d: broken link to block %d", b.Index, b.Index-1)
		}
		if !strings.HasPrefix(b.Hash, target) {
			return errors.Errorf("block %d: hash misses difficulty target %d", b.Index, l.difficulty)
		}
	}

	return nil
}
