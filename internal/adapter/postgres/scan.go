package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Get builds the statement and scans exactly one row into dst.
// A missing row surfaces as an error for which MapError yields ErrNotFound.
func Get(ctx context.Context, q Querier, dst any, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Get(ctx, q, dst, query, args...)
}

// Select builds the statement and scans all rows into dst (a slice pointer).
func Select(ctx context.Context, q Querier, dst any, stmt sq.Sqlizer) error {
	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return pgxscan.Select(ctx, q, dst, query, args...)
}

// Exec builds and executes a statement that returns no rows.
func Exec(ctx context.Context, q Querier, stmt sq.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return q.Exec(ctx, query, args...)
}

// Count builds a SELECT count(*) statement and returns the result.
func Count(ctx context.Context, q Querier, stmt sq.Sqlizer) (int, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
