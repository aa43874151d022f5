package banco_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/arhyth/banco"
	"github.com/arhyth/banco/mocks"
)

func TestCanIssueCard(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate check needs no collaborator", func(tt *testing.T) {
		as := assert.New(tt)
		e := &banco.Eligibility{}
		ok, err := e.CanIssueCard(ctx, userWithCards(banco.CreditCardGold), banco.CreditCardGold)
		as.Nil(err)
		as.False(ok)
	})

	t.Run("card count check does not reach the bureau", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		cfg := mocks.NewMockConfigRepository(ctrl)
		cfg.EXPECT().MaxCardsPerUser(gomock.Any()).Return(0, nil)
		e := &banco.Eligibility{Config: cfg}
		ok, err := e.CanIssueCard(ctx, userWithCards(banco.CreditCardClassic), banco.CreditCardGold)
		as.Nil(err)
		as.False(ok)
	})

	t.Run("minimum scores per tier", func(tt *testing.T) {
		as := assert.New(tt)
		for kind, want := range map[banco.AccountKind]int64{
			banco.CreditCardClassic:  30,
			banco.CreditCardGold:     65,
			banco.CreditCardPlatinum: 85,
		} {
			s, ok := banco.MinimumScore(kind)
			as.True(ok)
			as.True(s.Equal(decimal.NewFromInt(want)))
		}
		_, ok := banco.MinimumScore(banco.ExternalSavings)
		as.False(ok)
	})

	t.Run("fractional scores compare exactly", func(tt *testing.T) {
		as := assert.New(tt)
		ctrl := gomock.NewController(tt)
		cfg := mocks.NewMockConfigRepository(ctrl)
		bureau := mocks.NewMockCreditBureau(ctrl)
		user := userWithCards()
		cfg.EXPECT().MaxCardsPerUser(gomock.Any()).Return(3, nil)
		bureau.EXPECT().Score(gomock.Any(), user.TaxID).Return(decimal.RequireFromString("64.99"), nil)
		e := &banco.Eligibility{Config: cfg, Bureau: bureau}
		ok, err := e.CanIssueCard(ctx, user, banco.CreditCardGold)
		as.Nil(err)
		as.False(ok)
	})
}
