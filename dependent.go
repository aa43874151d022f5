package banco

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	_ CrossBankService = (*DependentService)(nil)
)

// Collaborators groups the external dependencies of DependentService.
// Fields an operation does not use may be left nil.
type Collaborators struct {
	Users  UserRepository
	Config ConfigRepository
	Bureau CreditBureau
	Rail   TransferRail
	Rates  ExchangeRates
}

type DependentService struct {
	deps        Collaborators
	eligibility *Eligibility
	log         *zerolog.Logger
	now         func() time.Time
}

// NewDependentService builds the cross-bank service. A nil now uses time.Now.
func NewDependentService(deps Collaborators, log *zerolog.Logger, now func() time.Time) *DependentService {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if now == nil {
		now = time.Now
	}
	return &DependentService{
		deps: deps,
		eligibility: &Eligibility{
			Config: deps.Config,
			Bureau: deps.Bureau,
		},
		log: log,
		now: now,
	}
}

// Login reports whether username exists, is active and has exactly password.
// Only repository failures other than ErrNotFound are returned as errors.
func (s *DependentService) Login(ctx context.Context, username, password string) (bool, error) {
	user, err := s.deps.Users.FindByUsername(ctx, username)
	if err != nil {
		if errors.As(err, &ErrNotFound{}) {
			return false, nil
		}
		s.log.Err(err).Str("method", "Login").Msg("error looking up user")
		return false, ErrApplication{Op: "login", Reason: "looking up user", Err: err}
	}
	if user == nil || !user.IsActive {
		s.log.Debug().Str("method", "Login").Str("username", username).Msg("inactive or missing user")
		return false, nil
	}
	return user.Password == password, nil
}

func (s *DependentService) RequestCard(ctx context.Context, user *User, kind AccountKind) (bool, error) {
	ok, err := s.eligibility.CanIssueCard(ctx, user, kind)
	if err != nil {
		if errors.As(err, &ErrInvalidOperation{}) {
			return false, s.reject("RequestCard", err)
		}
		s.log.Err(err).Str("method", "RequestCard").Str("kind", kind.String()).Msg("card eligibility check failed")
		return false, err
	}
	s.log.Debug().
		Str("method", "RequestCard").
		Int64("userID", user.ID.Int64()).
		Str("kind", kind.String()).
		Bool("approved", ok).
		Msg("card request decided")
	return ok, nil
}

// TransferToThirdParty sends amount to an account in another bank. Balances
// are only touched after the rail confirms the transfer.
func (s *DependentService) TransferToThirdParty(ctx context.Context, src, dst *Account, amount Money) (*Receipt, error) {
	const op = "transfer to third party"
	if dst.Kind != ExternalSavings {
		return nil, s.reject("TransferToThirdParty", invalid(op, "destination is not an account in another bank"))
	}
	if err := checkTransfer(op, src, dst, amount); err != nil {
		return nil, s.reject("TransferToThirdParty", err)
	}

	sent, err := s.deps.Rail.Send(ctx, dst.BankName, dst.CLABE, amount.Amount())
	if err != nil {
		s.log.Err(err).Str("method", "TransferToThirdParty").Msg("transfer rail error")
		return nil, ErrApplication{Op: op, Reason: "transfer rail failed", Err: err}
	}
	if !sent {
		s.log.Debug().Str("method", "TransferToThirdParty").Str("bank", dst.BankName).Msg("transfer declined")
		return nil, ErrApplication{Op: op, Reason: "transfer rail declined the transfer"}
	}

	bal, err := src.Balance.Sub(amount)
	if err != nil {
		return nil, err
	}
	fee := InterbankFee(amount)
	bal, err = bal.Sub(fee)
	if err != nil {
		return nil, err
	}
	src.Balance = bal

	return &Receipt{
		Operation: OpInterbankTransfer,
		Amount:    amount,
		Fee:       fee,
		Balance:   bal,
		At:        s.now(),
	}, nil
}

func (s *DependentService) ConvertCurrency(ctx context.Context, m Money, to Currency) (Money, error) {
	rate, err := s.deps.Rates.Rate(ctx, m.Currency(), to)
	if err != nil {
		s.log.Err(err).
			Str("method", "ConvertCurrency").
			Str("from", string(m.Currency())).
			Str("to", string(to)).
			Msg("error quoting exchange rate")
		return Money{}, ErrApplication{Op: "convert currency", Reason: "quoting exchange rate", Err: err}
	}
	return NewMoney(m.Amount().Mul(rate), to), nil
}

func (s *DependentService) ConvertPesosToDollars(ctx context.Context, pesos decimal.Decimal) (Money, error) {
	return s.ConvertCurrency(ctx, NewMoney(pesos, MXN), USD)
}

func (s *DependentService) ConvertPesosToEuros(ctx context.Context, pesos decimal.Decimal) (Money, error) {
	return s.ConvertCurrency(ctx, NewMoney(pesos, MXN), EUR)
}

func (s *DependentService) reject(method string, err error) error {
	s.log.Debug().Err(err).Str("method", method).Msg("operation rejected")
	return err
}
