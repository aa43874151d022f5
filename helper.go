package banco

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5"
)

// LocalHelper prepares a database for local runs and integration tests.
type LocalHelper struct {
	Conn    *pgx.Conn
	Node    *snowflake.Node
	DataDir string
}

func NewLocalHelper(ctx context.Context, cfg *Config, dataDir string) (*LocalHelper, error) {
	conn, err := pgx.Connect(ctx, cfg.Database.ConnStr)
	if err != nil {
		return nil, err
	}
	node, err := snowflake.NewNode(cfg.Node)
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	return &LocalHelper{
		Conn:    conn,
		Node:    node,
		DataDir: dataDir,
	}, nil
}

// InitDB creates the schema and returns a function dropping it again.
func (lh *LocalHelper) InitDB(ctx context.Context) (func(), error) {
	bits, err := os.ReadFile(filepath.Join(lh.DataDir, "init_db.sql"))
	if err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(ctx, string(bits)); err != nil {
		return nil, err
	}
	return lh.teardownDB(), err
}

type seedUser struct {
	ID int64
	UserSeed
}

type seedData struct {
	MaxCardsPerUser int
	Rates           []RateSeed
	Users           []seedUser
}

// Seed writes settings, exchange rates and users, returning the generated
// user IDs keyed by username.
func (lh *LocalHelper) Seed(ctx context.Context, seed SeedConfig) (map[string]snowflake.ID, error) {
	funcMap := template.FuncMap{
		"ToUpper": strings.ToUpper,
		"quote":   func(s string) string { return "'" + strings.ReplaceAll(s, "'", "''") + "'" },
		"last":    func(i, n int) bool { return i == n-1 },
	}
	bits, err := os.ReadFile(filepath.Join(lh.DataDir, "seed.tmpl"))
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("seed").Funcs(funcMap).Parse(string(bits))
	if err != nil {
		return nil, err
	}

	ids := make(map[string]snowflake.ID, len(seed.Users))
	data := seedData{
		MaxCardsPerUser: seed.MaxCardsPerUser,
		Rates:           seed.Rates,
	}
	for _, u := range seed.Users {
		id := lh.Node.Generate()
		ids[u.Username] = id
		data.Users = append(data.Users, seedUser{ID: id.Int64(), UserSeed: u})
	}

	buf := new(bytes.Buffer)
	if err = tmpl.Execute(buf, data); err != nil {
		return nil, err
	}
	if _, err = lh.Conn.Exec(ctx, buf.String()); err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertAccount stores acct for owner, generating its ID when unset.
func (lh *LocalHelper) InsertAccount(ctx context.Context, owner snowflake.ID, acct *Account) error {
	if acct.ID == 0 {
		acct.ID = lh.Node.Generate()
	}
	var (
		pin      *int
		dueDate  any
		bankName *string
		clabe    *string
	)
	if acct.PIN != 0 {
		pin = &acct.PIN
	}
	if acct.Kind.IsCreditCard() {
		dueDate = acct.StatementDueDate
	}
	if acct.Kind == ExternalSavings {
		bankName, clabe = &acct.BankName, &acct.CLABE
	}
	sql := `
	INSERT INTO accounts (pub_id, user_id, kind, currency, balance, pin, due_date, bank_name, clabe)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := lh.Conn.Exec(ctx, sql,
		acct.ID.Int64(), owner.Int64(), acct.Kind.String(),
		string(acct.Balance.Currency()), acct.Balance.Amount(),
		pin, dueDate, bankName, clabe,
	)
	return err
}

func (lh *LocalHelper) Close(ctx context.Context) error {
	return lh.Conn.Close(ctx)
}

func (lh *LocalHelper) teardownDB() func() {
	return func() {
		ctx := context.Background()
		defer lh.Conn.Close(ctx)

		bits, err := os.ReadFile(filepath.Join(lh.DataDir, "teardown_db.sql"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup read teardown sql: %s", err.Error())
			return
		}
		if _, err = lh.Conn.Exec(ctx, string(bits)); err != nil {
			fmt.Fprintf(os.Stderr, "DB cleanup exec teardown sql: %s", err.Error())
			return
		}
	}
}
