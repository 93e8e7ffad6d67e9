package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tagkeep/tagkeep/internal/store/dbutil"
)

// Column describes one column of a provisioned table.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable string `json:"nullable"`
	Default  string `json:"default,omitempty"`
}

// Index describes one index by name and full definition.
type Index struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// TableExists checks information_schema for a base table in the public schema.
func TableExists(ctx context.Context, db *pgxpool.Pool, table string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(
        SELECT 1 FROM information_schema.tables
        WHERE table_schema='public' AND table_type='BASE TABLE' AND table_name=$1)`, table).Scan(&exists)
	if err != nil {
		return false, dbutil.ErrWrap("introspect.table", err, dbutil.ParamSummary("table", table))
	}
	return exists, nil
}

// IndexExists checks pg_indexes for an index by name.
func IndexExists(ctx context.Context, db *pgxpool.Pool, index string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(
        SELECT 1 FROM pg_indexes
        WHERE schemaname='public' AND indexname=$1)`, index).Scan(&exists)
	if err != nil {
		return false, dbutil.ErrWrap("introspect.index", err, dbutil.ParamSummary("index", index))
	}
	return exists, nil
}

// ConstraintExists checks pg_constraint for a constraint on the given table.
func ConstraintExists(ctx context.Context, db *pgxpool.Pool, table, constraint string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(
        SELECT 1 FROM pg_constraint
        WHERE conname=$1 AND conrelid=to_regclass($2))`, constraint, table).Scan(&exists)
	if err != nil {
		return false, dbutil.ErrWrap("introspect.constraint", err, dbutil.ParamSummary("constraint", constraint))
	}
	return exists, nil
}

// TableColumns returns the column layout in ordinal order.
func TableColumns(ctx context.Context, db *pgxpool.Pool, table string) ([]Column, error) {
	rows, err := db.Query(ctx, `SELECT column_name, data_type, is_nullable, COALESCE(column_default, '')
        FROM information_schema.columns
        WHERE table_schema='public' AND table_name=$1
        ORDER BY ordinal_position`, table)
	if err != nil {
		return nil, dbutil.ErrWrap("introspect.columns", err, dbutil.ParamSummary("table", table))
	}
	defer rows.Close()
	var out []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.DataType, &c.Nullable, &c.Default); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TableIndexes returns all indexes on the table, including the ones backing
// primary key and unique constraints.
func TableIndexes(ctx context.Context, db *pgxpool.Pool, table string) ([]Index, error) {
	rows, err := db.Query(ctx, `SELECT indexname, indexdef
        FROM pg_indexes
        WHERE schemaname='public' AND tablename=$1
        ORDER BY indexname`, table)
	if err != nil {
		return nil, dbutil.ErrWrap("introspect.indexes", err, dbutil.ParamSummary("table", table))
	}
	defer rows.Close()
	var out []Index
	for rows.Next() {
		var ix Index
		if err := rows.Scan(&ix.Name, &ix.Definition); err != nil {
			return nil, err
		}
		out = append(out, ix)
	}
	return out, rows.Err()
}
