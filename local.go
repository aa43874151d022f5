package banco

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	_ AccountService = (*LocalService)(nil)
)

type LocalService struct {
	log *zerolog.Logger
	now func() time.Time
}

// NewLocalService builds the local operations service. A nil now uses time.Now.
func NewLocalService(log *zerolog.Logger, now func() time.Time) *LocalService {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	if now == nil {
		now = time.Now
	}
	return &LocalService{log: log, now: now}
}

func (s *LocalService) ChangePin(acct *Account, newPin, confirmPin int) error {
	const op = "change pin"
	if acct.Kind == ExternalSavings {
		return s.reject("ChangePin", invalid(op, "external accounts have no PIN"))
	}
	if !validPIN(newPin) {
		return s.reject("ChangePin", invalid(op, "new PIN must have 4 digits"))
	}
	if !validPIN(confirmPin) {
		return s.reject("ChangePin", invalid(op, "confirmation PIN must have 4 digits"))
	}
	if newPin != confirmPin {
		return s.reject("ChangePin", invalid(op, "PINs do not match"))
	}
	acct.PIN = newPin
	s.log.Debug().Str("method", "ChangePin").Int64("acctID", acct.ID.Int64()).Msg("PIN changed")
	return nil
}

func (s *LocalService) WithdrawAtAtm(acct *Account, pin int, amount decimal.Decimal) (*Receipt, error) {
	const op = "withdraw at ATM"
	if acct.Balance.Currency() != MXN {
		return nil, s.reject("WithdrawAtAtm", invalid(op, "ATM withdrawals are only available in MXN"))
	}
	if acct.PIN == 0 || pin != acct.PIN {
		return nil, s.reject("WithdrawAtAtm", invalid(op, "wrong PIN"))
	}
	amt := NewMoney(amount, MXN)
	if !amt.IsPositive() {
		return nil, s.reject("WithdrawAtAtm", invalid(op, "amount must be positive"))
	}

	fee := WithdrawalFee(acct.Kind, amt)
	total, err := amt.Add(fee)
	if err != nil {
		return nil, err
	}
	bal, err := acct.Balance.Sub(total)
	if err != nil {
		return nil, err
	}
	acct.Balance = bal

	return &Receipt{
		Operation: OpAtmWithdrawal,
		Amount:    amt,
		Fee:       fee,
		Balance:   bal,
		At:        s.now(),
	}, nil
}

func (s *LocalService) TransferBetweenOwnAccounts(src, dst *Account, amount Money) (*Receipt, error) {
	if err := checkTransfer("transfer between own accounts", src, dst, amount); err != nil {
		return nil, s.reject("TransferBetweenOwnAccounts", err)
	}
	srcBal, err := src.Balance.Sub(amount)
	if err != nil {
		return nil, err
	}
	dstBal, err := dst.Balance.Add(amount)
	if err != nil {
		return nil, err
	}
	src.Balance, dst.Balance = srcBal, dstBal

	return &Receipt{
		Operation:          OpOwnTransfer,
		Amount:             amount,
		Fee:                NewMoney(decimal.Zero, amount.Currency()),
		Balance:            srcBal,
		DestinationBalance: &dstBal,
		At:                 s.now(),
	}, nil
}

// PayCreditCard charges the fee to src only; the card is credited exactly amount.
func (s *LocalService) PayCreditCard(src, card *Account, amount Money) (*Receipt, error) {
	const op = "pay credit card"
	if err := checkTransfer(op, src, card, amount); err != nil {
		return nil, s.reject("PayCreditCard", err)
	}
	if !card.Kind.IsCreditCard() {
		return nil, s.reject("PayCreditCard", invalid(op, "destination is not a credit card"))
	}

	now := s.now()
	fee := CardPaymentFee(src.Kind, card, amount, now)
	total, err := amount.Add(fee)
	if err != nil {
		return nil, err
	}
	srcBal, err := src.Balance.Sub(total)
	if err != nil {
		return nil, err
	}
	cardBal, err := card.Balance.Add(amount)
	if err != nil {
		return nil, err
	}
	src.Balance, card.Balance = srcBal, cardBal

	if IsPastDue(card, now) {
		s.log.Debug().
			Str("method", "PayCreditCard").
			Int64("cardID", card.ID.Int64()).
			Msg("past due surcharge applied")
	}

	return &Receipt{
		Operation:          OpCardPayment,
		Amount:             amount,
		Fee:                fee,
		Balance:            srcBal,
		DestinationBalance: &cardBal,
		At:                 now,
	}, nil
}

func (s *LocalService) reject(method string, err error) error {
	s.log.Debug().Err(err).Str("method", method).Msg("operation rejected")
	return err
}
