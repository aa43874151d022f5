package banco

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

var cardScoreThresholds = map[AccountKind]decimal.Decimal{
	CreditCardClassic:  decimal.NewFromInt(30),
	CreditCardGold:     decimal.NewFromInt(65),
	CreditCardPlatinum: decimal.NewFromInt(85),
}

// MinimumScore returns the inclusive bureau score a card tier requires.
func MinimumScore(kind AccountKind) (decimal.Decimal, bool) {
	s, ok := cardScoreThresholds[kind]
	return s, ok
}

// Eligibility decides whether a user may be issued a credit card. It only
// reads the user; issuing the card is someone else's job.
type Eligibility struct {
	Config ConfigRepository
	Bureau CreditBureau
}

func (e *Eligibility) CanIssueCard(ctx context.Context, user *User, kind AccountKind) (bool, error) {
	threshold, ok := MinimumScore(kind)
	if !ok {
		return false, invalid("request card", fmt.Sprintf("%s is not a credit card", kind))
	}
	if user.hasKind(kind) {
		return false, nil
	}

	maxCards, err := e.Config.MaxCardsPerUser(ctx)
	if err != nil {
		return false, ErrApplication{Op: "request card", Reason: "reading max cards per user", Err: err}
	}
	// Users at the maximum still get one more; only counts above it are refused.
	if user.creditCardCount() > maxCards {
		return false, nil
	}

	score, err := e.Bureau.Score(ctx, user.TaxID)
	if err != nil {
		return false, ErrApplication{Op: "request card", Reason: "querying credit bureau", Err: err}
	}
	return score.GreaterThanOrEqual(threshold), nil
}
