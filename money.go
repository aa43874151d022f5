package banco

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	MXN Currency = "MXN"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CAD Currency = "CAD"
	JPY Currency = "JPY"
)

var supportedCurrencies = map[Currency]struct{}{
	MXN: {}, USD: {}, EUR: {}, GBP: {}, CAD: {}, JPY: {},
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := supportedCurrencies[c]; !ok {
		return "", invalid("parse currency", fmt.Sprintf("unsupported currency %q", s))
	}
	return c, nil
}

// Money is an immutable amount in a single currency. Arithmetic between
// different currencies is refused; conversion goes through ExchangeRates.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

func NewMoneyFromInt(amount int64, currency Currency) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: currency}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) Add(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, invalid("add", fmt.Sprintf("currencies differ: %s and %s", m.currency, o.currency))
	}
	return Money{amount: m.amount.Add(o.amount), currency: m.currency}, nil
}

func (m Money) Sub(o Money) (Money, error) {
	if m.currency != o.currency {
		return Money{}, invalid("subtract", fmt.Sprintf("currencies differ: %s and %s", m.currency, o.currency))
	}
	return Money{amount: m.amount.Sub(o.amount), currency: m.currency}, nil
}

// Mul scales the amount by factor, keeping the currency.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equal compares amounts numerically, so 870 and 870.00 are equal.
func (m Money) Equal(o Money) bool {
	return m.currency == o.currency && m.amount.Equal(o.amount)
}

func (m Money) String() string {
	return m.amount.String() + " " + string(m.currency)
}
