package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// FileName is the sqlite database created by OpenSQLite.
const FileName = "list_prefs.db"

type dialect struct {
	driver string
	schema string
	upsert string
}

var (
	sqliteDialect = dialect{
		driver: "sqlite3",
		schema: `CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL
)`,
		upsert: `INSERT INTO kv (k, v) VALUES (?, ?)
ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
	}
	mysqlDialect = dialect{
		driver: "mysql",
		schema: `CREATE TABLE IF NOT EXISTS kv (
    k VARCHAR(191) PRIMARY KEY,
    v LONGTEXT NOT NULL
)`,
		upsert: `INSERT INTO kv (k, v) VALUES (?, ?)
ON DUPLICATE KEY UPDATE v = VALUES(v)`,
	}
)

// Store keeps string values in a two-column table.
type Store struct {
	db      *sql.DB
	d       dialect
	timeout time.Duration
}

// OpenSQLite opens (creating if needed) dir/list_prefs.db.
func OpenSQLite(dir string) (*Store, error) {
	return open(sqliteDialect, filepath.Join(dir, FileName))
}

// OpenMySQL connects with a go-sql-driver DSN, e.g. user:pass@tcp(host:3306)/shoplist.
func OpenMySQL(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("mysql: empty dsn")
	}
	return open(mysqlDialect, dsn)
}

func open(d dialect, dsn string) (*Store, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}
	s := &Store{db: db, d: d, timeout: 5 * time.Second}
	ctx, cancel := s.ctx()
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", d.driver, err)
	}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.d.schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (s *Store) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) GetString(key string) (string, bool, error) {
	ctx, cancel := s.ctx()
	defer cancel()
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT v FROM kv WHERE k = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %q: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) PutString(key, value string) error {
	ctx, cancel := s.ctx()
	defer cancel()
	if _, err := s.db.ExecContext(ctx, s.d.upsert, key, value); err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}
