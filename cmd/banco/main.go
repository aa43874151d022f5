package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/arhyth/banco"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

const usage = `usage: banco [-config config.yml] <command> [args]

commands:
  login <username> <password>
  request-card <username> <classic|gold|platinum>
  convert <amount> <from> <to>
  withdraw <username> <pin> <amount> [receipt.pdf]
`

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := banco.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error loading config file")
	}

	ctx := context.Background()
	pgendpt, err := banco.NewPostgresEndpoint(ctx, cfg.Database.ConnStr, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}
	defer pgendpt.Close()

	svc := banco.NewDependentService(collaborators(cfg, pgendpt), &logger, nil)
	local := banco.NewLocalService(&logger, nil)

	if err = run(ctx, svc, local, pgendpt, args); err != nil {
		logger.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func collaborators(cfg *banco.Config, pg *banco.PostgresEndpoint) banco.Collaborators {
	bureauCB := gobreaker.NewCircuitBreaker[decimal.Decimal](
		banco.BreakerSettings("bureau", cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout))
	railCB := gobreaker.NewCircuitBreaker[bool](
		banco.BreakerSettings("rail", cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout))
	ratesCB := gobreaker.NewCircuitBreaker[decimal.Decimal](
		banco.BreakerSettings("rates", cfg.Breaker.MaxFailures, cfg.Breaker.OpenTimeout))

	var bureau banco.CreditBureau = banco.NewBureauClient(cfg.Bureau)
	bureau = banco.NewBureauBreaker(bureauCB)(bureau)
	bureau = banco.NewBureauLimiter(semaphore.NewWeighted(cfg.Limits.Bureau), cfg.Limits.AcquireTimeout)(bureau)

	var rates banco.ExchangeRates = pg
	rates = banco.NewRatesBreaker(ratesCB)(rates)
	rates = banco.NewRatesLimiter(semaphore.NewWeighted(cfg.Limits.Rates), cfg.Limits.AcquireTimeout)(rates)

	return banco.Collaborators{
		Users:  pg,
		Config: pg,
		Bureau: bureau,
		Rail:   banco.NewRailBreaker(railCB)(banco.NewRailClient(cfg.Rail)),
		Rates:  rates,
	}
}

func run(ctx context.Context, svc banco.CrossBankService, local banco.AccountService, users banco.UserRepository, args []string) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("login needs <username> <password>")
		}
		ok, err := svc.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(ok)

	case "request-card":
		if len(args) != 3 {
			return fmt.Errorf("request-card needs <username> <tier>")
		}
		user, err := users.FindByUsername(ctx, args[1])
		if err != nil {
			return err
		}
		kind, err := banco.ParseAccountKind(args[2])
		if err != nil {
			return err
		}
		ok, err := svc.RequestCard(ctx, user, kind)
		if err != nil {
			return err
		}
		fmt.Println(ok)

	case "convert":
		if len(args) != 4 {
			return fmt.Errorf("convert needs <amount> <from> <to>")
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return err
		}
		from, err := banco.ParseCurrency(args[2])
		if err != nil {
			return err
		}
		to, err := banco.ParseCurrency(args[3])
		if err != nil {
			return err
		}
		m, err := svc.ConvertCurrency(ctx, banco.NewMoney(amount, from), to)
		if err != nil {
			return err
		}
		fmt.Println(m)

	case "withdraw":
		// Computes the withdrawal on the loaded account without persisting it.
		if len(args) != 4 && len(args) != 5 {
			return fmt.Errorf("withdraw needs <username> <pin> <amount> [receipt.pdf]")
		}
		user, err := users.FindByUsername(ctx, args[1])
		if err != nil {
			return err
		}
		pin, err := strconv.Atoi(args[2])
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(args[3])
		if err != nil {
			return err
		}
		var acct *banco.Account
		for _, a := range user.Accounts {
			if a.Kind == banco.LocalSavings {
				acct = a
				break
			}
		}
		if acct == nil {
			return banco.ErrNotFound{Key: args[1] + "/" + banco.LocalSavings.String()}
		}
		rcpt, err := local.WithdrawAtAtm(acct, pin, amount)
		if err != nil {
			return err
		}
		fmt.Printf("fee %s, balance %s\n", rcpt.Fee, rcpt.Balance)
		if len(args) == 5 {
			fl, err := os.Create(args[4])
			if err != nil {
				return err
			}
			defer fl.Close()
			return banco.WriteReceiptPDF(fl, *rcpt)
		}

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
