package banco

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type ClientConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	Node     int64 `yaml:"node"`
	Database struct {
		ConnStr string `yaml:"conn_str"`
	} `yaml:"database"`
	Bureau  ClientConfig `yaml:"bureau"`
	Rail    ClientConfig `yaml:"rail"`
	Breaker struct {
		MaxFailures uint32        `yaml:"max_failures"`
		OpenTimeout time.Duration `yaml:"open_timeout"`
	} `yaml:"breaker"`
	Limits struct {
		Bureau         int64         `yaml:"bureau"`
		Rates          int64         `yaml:"rates"`
		AcquireTimeout time.Duration `yaml:"acquire_timeout"`
	} `yaml:"limits"`
	Seed SeedConfig `yaml:"seed"`
}

// SeedConfig is what the seeder writes into a fresh database.
type SeedConfig struct {
	MaxCardsPerUser int        `yaml:"max_cards_per_user"`
	Rates           []RateSeed `yaml:"rates"`
	Users           []UserSeed `yaml:"users"`
}

type RateSeed struct {
	From Currency `yaml:"from"`
	To   Currency `yaml:"to"`
	Rate string   `yaml:"rate"`
}

type UserSeed struct {
	Username string `yaml:"username"`
	TaxID    string `yaml:"tax_id"`
	Password string `yaml:"password"`
	Active   bool   `yaml:"active"`
}

func LoadConfig(path string) (*Config, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()

	cfg := DefaultConfig()
	if err = yaml.NewDecoder(fl).Decode(cfg); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return cfg, nil
}

// DefaultConfig returns a Config with every tunable set to its default.
// It carries no database connection string and no seed data.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Node == 0 {
		c.Node = 1
	}
	if c.Bureau.Timeout == 0 {
		c.Bureau.Timeout = 5 * time.Second
	}
	if c.Rail.Timeout == 0 {
		c.Rail.Timeout = 30 * time.Second
	}
	if c.Breaker.MaxFailures == 0 {
		c.Breaker.MaxFailures = 5
	}
	if c.Breaker.OpenTimeout == 0 {
		c.Breaker.OpenTimeout = time.Minute
	}
	if c.Limits.Bureau == 0 {
		c.Limits.Bureau = 16
	}
	if c.Limits.Rates == 0 {
		c.Limits.Rates = 64
	}
	if c.Limits.AcquireTimeout == 0 {
		c.Limits.AcquireTimeout = time.Second
	}
	if c.Seed.MaxCardsPerUser == 0 {
		c.Seed.MaxCardsPerUser = 3
	}
}
