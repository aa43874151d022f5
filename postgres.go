package banco

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	pgSelectUserSQL = `
		SELECT pub_id, username, tax_id, is_active, password
		FROM users
		WHERE username = $1;
	`

	pgSelectUserAcctsSQL = `
		SELECT pub_id, kind, currency, balance, pin, due_date, bank_name, clabe
		FROM accounts
		WHERE user_id = $1
		ORDER BY pub_id;
	`

	pgSelectSettingSQL = `
		SELECT value
		FROM settings
		WHERE key = $1;
	`

	pgSelectRateSQL = `
		SELECT rate
		FROM exchange_rates
		WHERE base = $1 AND quote = $2;
	`

	settingMaxCardsPerUser = "max_cards_per_user"
)

// PostgresEndpoint backs the user, configuration and exchange-rate
// collaborators with a Postgres database. It never writes.
type PostgresEndpoint struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
}

var (
	_ UserRepository   = (*PostgresEndpoint)(nil)
	_ ConfigRepository = (*PostgresEndpoint)(nil)
	_ ExchangeRates    = (*PostgresEndpoint)(nil)
)

func NewPostgresEndpoint(ctx context.Context, connStr string, log *zerolog.Logger) (*PostgresEndpoint, error) {
	cfg, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	endpt := &PostgresEndpoint{
		pool: pool,
		log:  log,
	}
	return endpt, err
}

func (pg *PostgresEndpoint) Close() {
	pg.pool.Close()
}

func (pg *PostgresEndpoint) FindByUsername(ctx context.Context, username string) (*User, error) {
	var (
		uid  int64
		user User
	)
	row := pg.pool.QueryRow(ctx, pgSelectUserSQL, username)
	if err := row.Scan(&uid, &user.Username, &user.TaxID, &user.IsActive, &user.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound{Key: username}
		}
		return nil, err
	}
	user.ID = snowflake.ParseInt64(uid)

	rows, err := pg.pool.Query(ctx, pgSelectUserAcctsSQL, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			aid      int64
			kind     string
			currency string
			balance  decimal.Decimal
			pin      *int32
			dueDate  *time.Time
			bankName *string
			clabe    *string
		)
		if err = rows.Scan(&aid, &kind, &currency, &balance, &pin, &dueDate, &bankName, &clabe); err != nil {
			return nil, err
		}
		acct, err := pgAccount(&user, aid, kind, currency, balance)
		if err != nil {
			pg.log.Err(err).Int64("acctID", aid).Msg("error decoding account row")
			return nil, err
		}
		if pin != nil {
			acct.PIN = int(*pin)
		}
		if dueDate != nil {
			acct.StatementDueDate = *dueDate
		}
		if bankName != nil {
			acct.BankName = *bankName
		}
		if clabe != nil {
			acct.CLABE = *clabe
		}
		user.Accounts = append(user.Accounts, acct)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &user, nil
}

func pgAccount(owner *User, id int64, kind, currency string, balance decimal.Decimal) (*Account, error) {
	k, err := ParseAccountKind(kind)
	if err != nil {
		return nil, err
	}
	c, err := ParseCurrency(currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:      snowflake.ParseInt64(id),
		Kind:    k,
		Owner:   owner,
		Balance: NewMoney(balance, c),
	}, nil
}

func (pg *PostgresEndpoint) MaxCardsPerUser(ctx context.Context) (int, error) {
	var val string
	row := pg.pool.QueryRow(ctx, pgSelectSettingSQL, settingMaxCardsPerUser)
	if err := row.Scan(&val); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound{Key: settingMaxCardsPerUser}
		}
		return 0, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("setting %s: %w", settingMaxCardsPerUser, err)
	}
	return n, nil
}

func (pg *PostgresEndpoint) Rate(ctx context.Context, from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	var rate decimal.Decimal
	row := pg.pool.QueryRow(ctx, pgSelectRateSQL, string(from), string(to))
	if err := row.Scan(&rate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, ErrNotFound{Key: string(from) + "/" + string(to)}
		}
		return decimal.Zero, err
	}
	return rate, nil
}
