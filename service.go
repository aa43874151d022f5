package banco

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountService holds the operations that need no collaborator.
// Accounts are mutated in place; persisting them is the caller's job.
type AccountService interface {
	ChangePin(acct *Account, newPin, confirmPin int) error
	WithdrawAtAtm(acct *Account, pin int, amount decimal.Decimal) (*Receipt, error)
	TransferBetweenOwnAccounts(src, dst *Account, amount Money) (*Receipt, error)
	PayCreditCard(src, card *Account, amount Money) (*Receipt, error)
}

// CrossBankService holds the operations that consult a collaborator.
type CrossBankService interface {
	Login(ctx context.Context, username, password string) (bool, error)
	RequestCard(ctx context.Context, user *User, kind AccountKind) (bool, error)
	TransferToThirdParty(ctx context.Context, src, dst *Account, amount Money) (*Receipt, error)
	ConvertCurrency(ctx context.Context, m Money, to Currency) (Money, error)
	ConvertPesosToDollars(ctx context.Context, pesos decimal.Decimal) (Money, error)
	ConvertPesosToEuros(ctx context.Context, pesos decimal.Decimal) (Money, error)
}

// checkTransfer validates a movement of amount from src to dst common to
// every two-account operation: distinct accounts, same currency, same owner,
// positive amount.
func checkTransfer(op string, src, dst *Account, amount Money) error {
	if src == dst || (src.ID != 0 && src.ID == dst.ID) {
		return invalid(op, "source and destination are the same account")
	}
	if src.Balance.Currency() != dst.Balance.Currency() {
		return invalid(op, "currencies differ")
	}
	if !sameOwner(src, dst) {
		return invalid(op, "accounts belong to different users")
	}
	return checkAmount(op, src, amount)
}

func checkAmount(op string, src *Account, amount Money) error {
	if amount.Currency() != src.Balance.Currency() {
		return invalid(op, "amount currency differs from account currency")
	}
	if !amount.IsPositive() {
		return invalid(op, "amount must be positive")
	}
	return nil
}
