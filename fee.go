package banco

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ATM withdrawal rate by the withdrawing account's kind.
	withdrawalFeeRates = map[AccountKind]decimal.Decimal{
		LocalSavings:       decimal.Zero,
		ExternalSavings:    decimal.RequireFromString("0.30"),
		CreditCardClassic:  decimal.RequireFromString("0.06"),
		CreditCardGold:     decimal.RequireFromString("0.06"),
		CreditCardPlatinum: decimal.RequireFromString("0.06"),
	}

	cardPaymentFromSavingsRate = decimal.Zero
	cardPaymentFromCardRate    = decimal.RequireFromString("0.05")
	pastDueSurchargeRate       = decimal.RequireFromString("0.10")

	interbankFeeRate = decimal.RequireFromString("0.01")
)

// WithdrawalFeeRate is charged on top of the withdrawn amount.
func WithdrawalFeeRate(kind AccountKind) decimal.Decimal {
	if r, ok := withdrawalFeeRates[kind]; ok {
		return r
	}
	return decimal.Zero
}

func WithdrawalFee(kind AccountKind, amount Money) Money {
	return amount.Mul(WithdrawalFeeRate(kind))
}

// IsPastDue reports whether the card's statement due date is strictly before now.
// A card without a due date is never past due.
func IsPastDue(card *Account, now time.Time) bool {
	if !card.Kind.IsCreditCard() || card.StatementDueDate.IsZero() {
		return false
	}
	return card.StatementDueDate.Before(now)
}

// CardPaymentFeeRate is the base rate for the paying account's kind plus the
// past-due surcharge of the destination card.
func CardPaymentFeeRate(payer AccountKind, card *Account, now time.Time) decimal.Decimal {
	rate := cardPaymentFromSavingsRate
	if payer.IsCreditCard() {
		rate = cardPaymentFromCardRate
	}
	if IsPastDue(card, now) {
		rate = rate.Add(pastDueSurchargeRate)
	}
	return rate
}

func CardPaymentFee(payer AccountKind, card *Account, amount Money, now time.Time) Money {
	return amount.Mul(CardPaymentFeeRate(payer, card, now))
}

func InterbankFeeRate() decimal.Decimal {
	return interbankFeeRate
}

func InterbankFee(amount Money) Money {
	return amount.Mul(interbankFeeRate)
}
