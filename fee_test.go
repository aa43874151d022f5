package banco_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/arhyth/banco"
)

func TestWithdrawalFeeRate(t *testing.T) {
	cases := map[banco.AccountKind]string{
		banco.LocalSavings:       "0",
		banco.ExternalSavings:    "0.3",
		banco.CreditCardClassic:  "0.06",
		banco.CreditCardGold:     "0.06",
		banco.CreditCardPlatinum: "0.06",
	}
	for kind, want := range cases {
		t.Run(kind.String(), func(tt *testing.T) {
			as := assert.New(tt)
			as.True(banco.WithdrawalFeeRate(kind).Equal(decimal.RequireFromString(want)))
		})
	}
}

func TestCardPaymentFeeRate(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	current := &banco.Account{Kind: banco.CreditCardClassic, StatementDueDate: now.AddDate(0, 0, 2)}
	pastDue := &banco.Account{Kind: banco.CreditCardClassic, StatementDueDate: now.AddDate(0, 0, -5)}
	dueNow := &banco.Account{Kind: banco.CreditCardClassic, StatementDueDate: now}

	t.Run("savings payer on current card pays nothing", func(tt *testing.T) {
		as := assert.New(tt)
		as.True(banco.CardPaymentFeeRate(banco.LocalSavings, current, now).IsZero())
		as.True(banco.CardPaymentFeeRate(banco.ExternalSavings, current, now).IsZero())
	})

	t.Run("card payer pays 5 percent", func(tt *testing.T) {
		as := assert.New(tt)
		as.True(banco.CardPaymentFeeRate(banco.CreditCardGold, current, now).Equal(decimal.RequireFromString("0.05")))
	})

	t.Run("past due adds 10 percent", func(tt *testing.T) {
		as := assert.New(tt)
		as.True(banco.CardPaymentFeeRate(banco.LocalSavings, pastDue, now).Equal(decimal.RequireFromString("0.10")))
		as.True(banco.CardPaymentFeeRate(banco.CreditCardPlatinum, pastDue, now).Equal(decimal.RequireFromString("0.15")))
	})

	t.Run("due date equal to now is not past due", func(tt *testing.T) {
		as := assert.New(tt)
		as.False(banco.IsPastDue(dueNow, now))
		as.True(banco.CardPaymentFeeRate(banco.LocalSavings, dueNow, now).IsZero())
	})

	t.Run("card without a due date is not past due", func(tt *testing.T) {
		as := assert.New(tt)
		undated := &banco.Account{Kind: banco.CreditCardClassic}
		as.False(banco.IsPastDue(undated, now))
		as.True(banco.CardPaymentFeeRate(banco.LocalSavings, undated, now).IsZero())
	})
}

func TestInterbankFee(t *testing.T) {
	as := assert.New(t)
	fee := banco.InterbankFee(banco.NewMoneyFromInt(150, banco.MXN))
	as.True(fee.Equal(banco.NewMoney(decimal.RequireFromString("1.5"), banco.MXN)))
}
