package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/arhyth/banco"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	datadir := flag.String("data", "testdata", "directory holding schema and seed files")
	flag.Parse()

	cfg, err := banco.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config file")
	}

	ctx := context.Background()
	lh, err := banco.NewLocalHelper(ctx, cfg, *datadir)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting local helper")
	}
	defer lh.Close(ctx)

	if _, err = lh.InitDB(ctx); err != nil {
		logger.Fatal().Err(err).Msg("error initializing database")
	}
	ids, err := lh.Seed(ctx, cfg.Seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding database")
	}

	// every seeded user starts with a local MXN savings account
	for username, id := range ids {
		acct := &banco.Account{
			Kind:    banco.LocalSavings,
			Balance: banco.NewMoney(decimal.NewFromInt(1000), banco.MXN),
			PIN:     1234,
		}
		if err = lh.InsertAccount(ctx, id, acct); err != nil {
			logger.Fatal().Err(err).Str("username", username).Msg("error creating account")
		}
		card := &banco.Account{
			Kind:             banco.CreditCardClassic,
			Balance:          banco.NewMoney(decimal.Zero, banco.MXN),
			StatementDueDate: time.Now().AddDate(0, 1, 0),
		}
		if err = lh.InsertAccount(ctx, id, card); err != nil {
			logger.Fatal().Err(err).Str("username", username).Msg("error creating card")
		}
		logger.Info().
			Str("username", username).
			Int64("userID", id.Int64()).
			Msg("seeded user")
	}
}
