package banco

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/arhyth/banco UserRepository,ConfigRepository,CreditBureau,TransferRail,ExchangeRates

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserRepository returns ErrNotFound when no user has the given username.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

type ConfigRepository interface {
	MaxCardsPerUser(ctx context.Context) (int, error)
}

type CreditBureau interface {
	Score(ctx context.Context, taxID string) (decimal.Decimal, error)
}

// TransferRail sends funds to another bank. A false result with a nil error
// means the rail declined the transfer. Implementations must not be retried.
type TransferRail interface {
	Send(ctx context.Context, bankName, clabe string, amount decimal.Decimal) (bool, error)
}

// ExchangeRates returns the multiplier converting from into to.
type ExchangeRates interface {
	Rate(ctx context.Context, from, to Currency) (decimal.Decimal, error)
}
