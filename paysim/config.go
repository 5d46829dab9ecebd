package paysim

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every knob of the simulation.
type Config struct {
	// Seed drives all randomness. Runs with the same seed and a single
	// worker are identical.
	Seed int64 `yaml:"seed"`

	// Payments is how many payments the generator produces.
	Payments int `yaml:"payments"`

	// Workers is the number of concurrent scoring workers.
	Workers int `yaml:"workers"`

	Merchants  []string `yaml:"merchants"`
	Currencies []string `yaml:"currencies"`

	// Customers is the size of the synthetic customer pool.
	Customers int `yaml:"customers"`

	AmountMin float64 `yaml:"amount_min"`
	AmountMax float64 `yaml:"amount_max"`

	// FraudThreshold is the risk score at or above which a payment is
	// declined.
	FraudThreshold float64 `yaml:"fraud_threshold"`

	// Difficulty is the number of leading zero hex digits a block hash
	// must have. Values above 4 make the toy miner noticeably slow.
	Difficulty int `yaml:"difficulty"`

	// BlockSize is how many settled payments go into each block.
	BlockSize int `yaml:"block_size"`
}

// DefaultConfig returns the configuration the paysim demo runs with when
// no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:           42,
		Payments:       250,
		Workers:        4,
		Merchants:      []string{"acme-retail", "globex-travel", "initech-saas", "umbrella-pharma", "stark-industrial"},
		Currencies:     []string{"USD", "EUR", "GBP", "CAD"},
		Customers:      60,
		AmountMin:      1.50,
		AmountMax:      4999.99,
		FraudThreshold: 0.85,
		Difficulty:     3,
		BlockSize:      25,
	}
}

// Load reads a Config from a yaml file, filling unset fields from
// DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}

	return cfg, cfg.validate()
}

// Save writes the Config as yaml.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing config %q", path)
	}

	return nil
}

func (c Config) validate() error {
	switch {
	case c.Payments < 1:
		return errors.New("payments must be at least 1")
	case c.Workers < 1:
		return errors.New("workers must be at least 1")
	case len(c.Merchants) == 0:
		return errors.New("at least one merchant is required")
	case len(c.Currencies) == 0:
		return errors.New("at least one currency is required")
	case c.Customers < 1:
		return errors.New("customers must be at least 1")
	case c.AmountMin <= 0 || c.AmountMax < c.AmountMin:
		return errors.Errorf("amount bounds (%v, %v) are invalid", c.AmountMin, c.AmountMax)
	case c.FraudThreshold < 0 || c.FraudThreshold > 1:
		return errors.Errorf("fraud threshold %v is outside [0, 1]", c.FraudThreshold)
	case c.Difficulty < 0 || c.Difficulty > 6:
		return errors.Errorf("difficulty %d is outside [0, 6]", c.Difficulty)
	case c.BlockSize < 1:
		return errors.New("block size must be at least 1")
	}

	return nil
}
