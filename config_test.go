package banco_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/banco"
)

func TestLoadConfig(t *testing.T) {
	t.Run("decodes the example configuration", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		cfg, err := banco.LoadConfig("config.example.yml")
		reqrd.Nil(err)
		as.Equal("http://localhost:8081", cfg.Bureau.BaseURL)
		as.Equal(30*time.Second, cfg.Rail.Timeout)
		as.Equal(time.Minute, cfg.Breaker.OpenTimeout)
		as.Equal(3, cfg.Seed.MaxCardsPerUser)
		reqrd.Len(cfg.Seed.Rates, 4)
		as.Equal(banco.MXN, cfg.Seed.Rates[0].From)
		as.Equal("0.052", cfg.Seed.Rates[0].Rate)
		reqrd.Len(cfg.Seed.Users, 1)
		as.Equal("1234", cfg.Seed.Users[0].Password)
	})

	t.Run("fills defaults for missing values", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		path := filepath.Join(tt.TempDir(), "config.yml")
		reqrd.Nil(os.WriteFile(path, []byte("database:\n  conn_str: postgres://x\n"), 0o600))
		cfg, err := banco.LoadConfig(path)
		reqrd.Nil(err)
		as.Equal("postgres://x", cfg.Database.ConnStr)
		as.EqualValues(1, cfg.Node)
		as.EqualValues(5, cfg.Breaker.MaxFailures)
		as.Equal(time.Second, cfg.Limits.AcquireTimeout)
	})

	t.Run("DefaultConfig matches the defaults LoadConfig fills", func(tt *testing.T) {
		as := assert.New(tt)
		cfg := banco.DefaultConfig()
		as.Empty(cfg.Database.ConnStr)
		as.EqualValues(1, cfg.Node)
		as.Equal(5*time.Second, cfg.Bureau.Timeout)
		as.Equal(30*time.Second, cfg.Rail.Timeout)
		as.EqualValues(16, cfg.Limits.Bureau)
		as.EqualValues(64, cfg.Limits.Rates)
		as.Equal(3, cfg.Seed.MaxCardsPerUser)
	})

	t.Run("returns error on missing file", func(tt *testing.T) {
		as := assert.New(tt)
		_, err := banco.LoadConfig(filepath.Join(tt.TempDir(), "nope.yml"))
		as.NotNil(err)
	})
}
