// Package pg holds the optional direct PostgreSQL connection used by the
// diagnostic endpoints: a connectivity probe and schema introspection for
// the marathons table. The product data path never goes through here; when
// no DATABASE_URL is configured the diagnostics simply report as
// unavailable.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	// Registers the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store wraps the direct database connection.
type Store struct {
	DB *sql.DB
}

// New opens a connection to PostgreSQL and verifies it with a ping.
func New(ctx context.Context, connString string) (*Store, error) {
	const op = "storage.pg.New"

	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{DB: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Status is the connectivity probe result.
type Status struct {
	Connected   bool   `json:"connected"`
	TableExists bool   `json:"tableExists"`
	RecordCount int    `json:"recordCount"`
	Error       string `json:"error,omitempty"`
}

// Status checks that the marathons table is reachable and counts its rows.
// A failed probe is a result, not an error.
func (s *Store) Status(ctx context.Context) Status {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'marathons'
    )`).Scan(&exists)
	if err != nil {
		return Status{Connected: false, Error: err.Error()}
	}
	st := Status{Connected: true, TableExists: exists}
	if !exists {
		return st
	}
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM marathons`).Scan(&st.RecordCount); err != nil {
		st.Error = err.Error()
	}
	return st
}

// Column describes one column of an introspected table.
type Column struct {
	ColumnName   string  `json:"column_name"`
	DataType     string  `json:"data_type"`
	IsNullable   string  `json:"is_nullable"`
	DefaultValue *string `json:"default_value"`
}

// TableInfo is the introspection result for one table.
type TableInfo struct {
	TableName   string   `json:"table_name"`
	Columns     []Column `json:"columns"`
	RecordCount int      `json:"record_count"`
}

var identRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// TableInfo reads the table's column metadata from information_schema and
// its row count. The table name goes into the count query as an identifier,
// so it is validated first.
func (s *Store) TableInfo(ctx context.Context, tableName string) (*TableInfo, error) {
	const op = "storage.pg.TableInfo"

	if !identRe.MatchString(tableName) {
		return nil, fmt.Errorf("%s: invalid table name %q", op, tableName)
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT column_name, data_type, is_nullable, column_default
        FROM information_schema.columns
        WHERE table_schema = 'public' AND table_name = $1
        ORDER BY ordinal_position`, tableName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	info := &TableInfo{TableName: tableName, Columns: []Column{}}
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.ColumnName, &c.DataType, &c.IsNullable, &c.DefaultValue); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		info.Columns = append(info.Columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(info.Columns) == 0 {
		return nil, fmt.Errorf("%s: table %q does not exist", op, tableName)
	}

	count := fmt.Sprintf(`SELECT COUNT(*) FROM %q`, tableName)
	if err := s.DB.QueryRowContext(ctx, count).Scan(&info.RecordCount); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return info, nil
}
