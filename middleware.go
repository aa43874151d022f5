package banco

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
)

type (
	BureauMiddleware func(CreditBureau) CreditBureau
	RailMiddleware   func(TransferRail) TransferRail
	RatesMiddleware  func(ExchangeRates) ExchangeRates
)

//
// Circuit breaking middlewares
//

// BreakerSettings builds gobreaker settings that trip after maxFailures
// consecutive failures and probe again after openTimeout.
func BreakerSettings(name string, maxFailures uint32, openTimeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
	}
}

type bureauBreaker struct {
	next CreditBureau
	cb   *gobreaker.CircuitBreaker[decimal.Decimal]
}

func NewBureauBreaker(cb *gobreaker.CircuitBreaker[decimal.Decimal]) BureauMiddleware {
	return func(next CreditBureau) CreditBureau {
		return &bureauBreaker{next: next, cb: cb}
	}
}

func (b *bureauBreaker) Score(ctx context.Context, taxID string) (decimal.Decimal, error) {
	return b.cb.Execute(func() (decimal.Decimal, error) {
		return b.next.Score(ctx, taxID)
	})
}

// railBreaker fails fast while the rail is unhealthy. It never retries: a
// retried send could move funds twice. A declined transfer is a normal
// answer and does not count as a failure.
type railBreaker struct {
	next TransferRail
	cb   *gobreaker.CircuitBreaker[bool]
}

func NewRailBreaker(cb *gobreaker.CircuitBreaker[bool]) RailMiddleware {
	return func(next TransferRail) TransferRail {
		return &railBreaker{next: next, cb: cb}
	}
}

func (r *railBreaker) Send(ctx context.Context, bankName, clabe string, amount decimal.Decimal) (bool, error) {
	return r.cb.Execute(func() (bool, error) {
		return r.next.Send(ctx, bankName, clabe, amount)
	})
}

type ratesBreaker struct {
	next ExchangeRates
	cb   *gobreaker.CircuitBreaker[decimal.Decimal]
}

func NewRatesBreaker(cb *gobreaker.CircuitBreaker[decimal.Decimal]) RatesMiddleware {
	return func(next ExchangeRates) ExchangeRates {
		return &ratesBreaker{next: next, cb: cb}
	}
}

func (r *ratesBreaker) Rate(ctx context.Context, from, to Currency) (decimal.Decimal, error) {
	return r.cb.Execute(func() (decimal.Decimal, error) {
		return r.next.Rate(ctx, from, to)
	})
}

//
// Rate limiting middlewares
//

// The limiters bound the number of in-flight calls to a collaborator with a
// weighted semaphore and an acquisition timeout, shedding load instead of
// queueing indefinitely. The rail is never limited this way.
type bureauLimiter struct {
	next    CreditBureau
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewBureauLimiter(sem *semaphore.Weighted, timeout time.Duration) BureauMiddleware {
	return func(next CreditBureau) CreditBureau {
		return &bureauLimiter{next: next, sem: sem, timeout: timeout}
	}
}

func (l *bureauLimiter) Score(ctx context.Context, taxID string) (decimal.Decimal, error) {
	release, err := acquire(ctx, l.sem, l.timeout)
	if err != nil {
		return decimal.Zero, err
	}
	defer release()
	return l.next.Score(ctx, taxID)
}

type ratesLimiter struct {
	next    ExchangeRates
	sem     *semaphore.Weighted
	timeout time.Duration
}

func NewRatesLimiter(sem *semaphore.Weighted, timeout time.Duration) RatesMiddleware {
	return func(next ExchangeRates) ExchangeRates {
		return &ratesLimiter{next: next, sem: sem, timeout: timeout}
	}
}

func (l *ratesLimiter) Rate(ctx context.Context, from, to Currency) (decimal.Decimal, error) {
	release, err := acquire(ctx, l.sem, l.timeout)
	if err != nil {
		return decimal.Zero, err
	}
	defer release()
	return l.next.Rate(ctx, from, to)
}

func acquire(ctx context.Context, sem *semaphore.Weighted, timeout time.Duration) (func(), error) {
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sem.Acquire(actx, 1); err != nil {
		return nil, ErrApplication{Op: "acquire", Reason: "too many in-flight requests", Err: err}
	}
	return func() { sem.Release(1) }, nil
}
