package banco_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arhyth/banco"
)

func TestAccountKind(t *testing.T) {
	t.Run("parses every kind from its name", func(tt *testing.T) {
		as := assert.New(tt)
		for _, k := range []banco.AccountKind{
			banco.LocalSavings, banco.ExternalSavings,
			banco.CreditCardClassic, banco.CreditCardGold, banco.CreditCardPlatinum,
		} {
			parsed, err := banco.ParseAccountKind(k.String())
			as.Nil(err)
			as.Equal(k, parsed)
		}
		_, err := banco.ParseAccountKind("diamond")
		as.ErrorAs(err, &banco.ErrInvalidOperation{})
	})

	t.Run("classifies savings and cards", func(tt *testing.T) {
		as := assert.New(tt)
		as.True(banco.LocalSavings.IsSavings())
		as.True(banco.ExternalSavings.IsSavings())
		as.False(banco.ExternalSavings.IsCreditCard())
		as.True(banco.CreditCardPlatinum.IsCreditCard())
		as.False(banco.CreditCardPlatinum.IsSavings())
	})
}
