package banco

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

type AccountKind int

const (
	LocalSavings AccountKind = iota + 1
	ExternalSavings
	CreditCardClassic
	CreditCardGold
	CreditCardPlatinum
)

var accountKindNames = map[AccountKind]string{
	LocalSavings:       "local_savings",
	ExternalSavings:    "external_savings",
	CreditCardClassic:  "classic",
	CreditCardGold:     "gold",
	CreditCardPlatinum: "platinum",
}

func (k AccountKind) String() string {
	if n, ok := accountKindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("AccountKind(%d)", int(k))
}

func ParseAccountKind(s string) (AccountKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range accountKindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, invalid("parse account kind", fmt.Sprintf("unknown account kind %q", s))
}

func (k AccountKind) IsCreditCard() bool {
	switch k {
	case CreditCardClassic, CreditCardGold, CreditCardPlatinum:
		return true
	}
	return false
}

func (k AccountKind) IsSavings() bool {
	return k == LocalSavings || k == ExternalSavings
}

// User owns its accounts. Identity is the ID, never the pointer.
type User struct {
	ID       snowflake.ID
	Username string
	TaxID    string
	IsActive bool
	Password string
	Accounts []*Account
}

// Account is a tagged union over AccountKind. StatementDueDate is only
// meaningful for credit cards; BankName and CLABE only for ExternalSavings.
type Account struct {
	ID      snowflake.ID
	Kind    AccountKind
	Owner   *User
	Balance Money
	// PIN is a 4 digit code; 0 means no PIN has been set.
	PIN int

	StatementDueDate time.Time

	BankName string
	CLABE    string
}

const (
	minPIN = 1000
	maxPIN = 9999
)

func validPIN(pin int) bool {
	return pin >= minPIN && pin <= maxPIN
}

func sameOwner(a, b *Account) bool {
	return a.Owner != nil && b.Owner != nil && a.Owner.ID == b.Owner.ID
}

func (u *User) hasKind(k AccountKind) bool {
	for _, a := range u.Accounts {
		if a != nil && a.Kind == k {
			return true
		}
	}
	return false
}

func (u *User) creditCardCount() int {
	n := 0
	for _, a := range u.Accounts {
		if a != nil && a.Kind.IsCreditCard() {
			n++
		}
	}
	return n
}
