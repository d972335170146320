package main

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/marcboeker/go-duckdb/v2"
)

// tableRef is a fully qualified table identifier. Catalog and Schema may be
// empty, in which case the connection's defaults apply.
type tableRef struct {
	Catalog string
	Schema  string
	Table   string
}

func parseTableRef(s string) (tableRef, error) {
	parts := strings.Split(s, ".")
	for _, p := range parts {
		if p == "" {
			return tableRef{}, fmt.Errorf("invalid table reference %q", s)
		}
	}
	switch len(parts) {
	case 1:
		return tableRef{Table: parts[0]}, nil
	case 2:
		return tableRef{Schema: parts[0], Table: parts[1]}, nil
	case 3:
		return tableRef{Catalog: parts[0], Schema: parts[1], Table: parts[2]}, nil
	}
	return tableRef{}, fmt.Errorf("invalid table reference %q: want [catalog.][schema.]table", s)
}

func (r tableRef) String() string {
	var parts []string
	for _, p := range []string{r.Catalog, r.Schema, r.Table} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

func (r tableRef) quoted() string {
	var parts []string
	for _, p := range []string{r.Catalog, r.Schema, r.Table} {
		if p != "" {
			parts = append(parts, quoteIdent(p))
		}
	}
	return strings.Join(parts, ".")
}

// metastore reads column metadata and writes column comments. Columns
// returns the table's columns in their native order.
type metastore interface {
	Columns(ref tableRef) ([]ColumnMeta, error)
	SetComment(ref tableRef, column, comment string) error
	Close() error
}

// openStore picks a backend from the DSN: postgres:// URLs go to lib/pq,
// anything else is treated as a DuckDB database path (empty for in-memory).
func openStore(dsn string, demo bool) (metastore, error) {
	if demo {
		return newDemoStore(), nil
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &pgStore{db: db}, nil
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &duckStore{db: db}, nil
}

type duckStore struct {
	db *sql.DB
}

func (s *duckStore) Columns(ref tableRef) ([]ColumnMeta, error) {
	query := `
		SELECT column_name, COALESCE(comment, '')
		FROM duckdb_columns()
		WHERE table_name = ?
		  AND (? = '' OR schema_name = ?)
		  AND (? = '' OR database_name = ?)
		ORDER BY column_index`
	rows, err := s.db.Query(query, ref.Table, ref.Schema, ref.Schema, ref.Catalog, ref.Catalog)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", ref, err)
	}
	defer rows.Close()

	return scanColumns(rows)
}

func (s *duckStore) SetComment(ref tableRef, column, comment string) error {
	_, err := s.db.Exec(commentStatement(ref, column, comment))
	return err
}

func (s *duckStore) Close() error {
	return s.db.Close()
}

type pgStore struct {
	db *sql.DB
}

// Columns ignores ref.Catalog: Postgres cannot describe tables outside the
// connected database.
func (s *pgStore) Columns(ref tableRef) ([]ColumnMeta, error) {
	rel := tableRef{Schema: ref.Schema, Table: ref.Table}.quoted()
	query := `
		SELECT a.attname, COALESCE(col_description(a.attrelid, a.attnum), '')
		FROM pg_catalog.pg_attribute a
		WHERE a.attrelid = $1::regclass
		  AND a.attnum > 0
		  AND NOT a.attisdropped
		ORDER BY a.attnum`
	rows, err := s.db.Query(query, rel)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", ref, err)
	}
	defer rows.Close()

	return scanColumns(rows)
}

func (s *pgStore) SetComment(ref tableRef, column, comment string) error {
	rel := tableRef{Schema: ref.Schema, Table: ref.Table}
	_, err := s.db.Exec(commentStatement(rel, column, comment))
	return err
}

func (s *pgStore) Close() error {
	return s.db.Close()
}

func scanColumns(rows *sql.Rows) ([]ColumnMeta, error) {
	cols := []ColumnMeta{}
	for rows.Next() {
		var name, comment string
		if err := rows.Scan(&name, &comment); err != nil {
			return nil, err
		}
		cols = append(cols, ColumnMeta{Name: name, Comment: comment})
	}
	return cols, rows.Err()
}

// commentStatement builds the COMMENT ON COLUMN statement shared by the SQL
// backends. COMMENT ON takes no bind parameters, hence the manual quoting.
// An empty comment clears the existing one.
func commentStatement(ref tableRef, column, comment string) string {
	value := "NULL"
	if comment != "" {
		value = quoteLiteral(comment)
	}
	return fmt.Sprintf("COMMENT ON COLUMN %s.%s IS %s", ref.quoted(), quoteIdent(column), value)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return `'` + strings.ReplaceAll(s, `'`, `''`) + `'`
}
