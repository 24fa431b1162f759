// Package versioned stores entities as append-only version chains.
//
// Every row is immutable. Rows sharing a natural key form a chain and the row
// with the highest id is the chain head, i.e. the current state for that key.
// A chain without a head means no state.
package versioned

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Chain describes one append-only relation.
type Chain struct {
	// Table is the append-only relation.
	Table string
	// Recent is the view exposing one head row per natural key.
	// Defaults to Table for relations where every row is its own chain.
	Recent string
	// ID is the monotonic identifier column.
	ID string
	// Serial marks ID as database generated.
	Serial bool
	// Key lists the natural key columns. Empty means the ID is the key.
	Key []string
	// Columns lists every column in select order, ID included.
	Columns []string
}

func (c Chain) keyColumns() []string {
	if len(c.Key) == 0 {
		return []string{c.ID}
	}
	return c.Key
}

func (c Chain) recent() string {
	if c.Recent == "" {
		return c.Table
	}
	return c.Recent
}

func (c Chain) insertColumns() []string {
	if !c.Serial {
		return c.Columns
	}
	cols := make([]string, 0, len(c.Columns))
	for _, col := range c.Columns {
		if col != c.ID {
			cols = append(cols, col)
		}
	}
	return cols
}

func (c Chain) selectList() string {
	return strings.Join(c.Columns, ", ")
}

// AppendQuery returns the named insert statement used by Append.
func (c Chain) AppendQuery() string {
	cols := c.insertColumns()
	named := make([]string, len(cols))
	for i, col := range cols {
		named[i] = ":" + col
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		c.Table, strings.Join(cols, ", "), strings.Join(named, ", "), c.selectList())
}

// Append inserts record as a new version and scans the stored row, including
// its assigned id, back into record.
func (c Chain) Append(ctx context.Context, exec sqlx.ExtContext, record interface{}) error {
	query, args, err := sqlx.Named(c.AppendQuery(), record)
	if err != nil {
		return fmt.Errorf("bind %s: %w", c.Table, err)
	}
	if err := sqlx.GetContext(ctx, exec, record, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return fmt.Errorf("append %s: %w", c.Table, err)
	}
	return nil
}

// HeadQuery returns the statement used by Head.
func (c Chain) HeadQuery() string {
	keys := c.keyColumns()
	conds := make([]string, len(keys))
	for i, col := range keys {
		conds[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s DESC LIMIT 1",
		c.selectList(), c.Table, strings.Join(conds, " AND "), c.ID)
}

// Head loads the current version for the natural key into dest. Key values
// follow the order of Key. It reports false when the chain is empty.
func (c Chain) Head(ctx context.Context, q sqlx.QueryerContext, dest interface{}, key ...interface{}) (bool, error) {
	if len(key) != len(c.keyColumns()) {
		return false, fmt.Errorf("%s head: expected %d key values, got %d", c.Table, len(c.keyColumns()), len(key))
	}
	if err := sqlx.GetContext(ctx, q, dest, c.HeadQuery(), key...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s head: %w", c.Table, err)
	}
	return true, nil
}

// Get loads a single version by id regardless of whether it is a head.
func (c Chain) Get(ctx context.Context, q sqlx.QueryerContext, dest interface{}, id interface{}) (bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", c.selectList(), c.Table, c.ID)
	if err := sqlx.GetContext(ctx, q, dest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", c.Table, err)
	}
	return true, nil
}

// Select loads every row matching filter, ordered by id. With onlyRecent
// only chain heads are considered and the filter applies to heads.
func (c Chain) Select(ctx context.Context, q sqlx.QueryerContext, dest interface{}, onlyRecent bool, filter *Filter) error {
	source := c.Table
	if onlyRecent {
		source = c.recent()
	}
	clause, args := filter.Build(1)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s%s", c.selectList(), source, clause, c.ID, filter.pageClause())
	if err := sqlx.SelectContext(ctx, q, dest, query, args...); err != nil {
		return fmt.Errorf("select %s: %w", c.Table, err)
	}
	return nil
}

// CountHeads counts chain heads matching filter.
func (c Chain) CountHeads(ctx context.Context, q sqlx.QueryerContext, filter *Filter) (int64, error) {
	clause, args := filter.Build(1)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", c.recent(), clause)
	var count int64
	if err := sqlx.GetContext(ctx, q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.Table, err)
	}
	return count, nil
}

// Count counts every row, head or not, matching filter.
func (c Chain) Count(ctx context.Context, q sqlx.QueryerContext, filter *Filter) (int64, error) {
	clause, args := filter.Build(1)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", c.Table, clause)
	var count int64
	if err := sqlx.GetContext(ctx, q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.Table, err)
	}
	return count, nil
}
