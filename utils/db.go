package utils

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Row is a single result row keyed by column name
type Row map[string]interface{}

// QueryResult is what a statement produced: the returned rows for queries,
// the affected count for mutations.
type QueryResult struct {
	Rows         []Row
	RowsAffected int64
}

// Gateway executes parameterized statements against the store. Placeholders
// are written as ? and bound positionally by the driver.
type Gateway interface {
	Execute(ctx context.Context, statement string, args ...interface{}) (*QueryResult, error)
}

// DBGateway implements Gateway on top of a gorm connection pool
type DBGateway struct {
	db *gorm.DB
}

// NewGateway wraps db. The pool is shared by every request.
func NewGateway(db *gorm.DB) *DBGateway {
	return &DBGateway{db: db}
}

// Execute runs statement with args. Any driver error comes back wrapping
// ErrDataAccess; store-specific codes are not interpreted.
func (g *DBGateway) Execute(ctx context.Context, statement string, args ...interface{}) (*QueryResult, error) {
	if returnsRows(statement) {
		return g.query(ctx, statement, args)
	}

	tx := g.db.WithContext(ctx).Exec(statement, args...)
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, tx.Error)
	}
	return &QueryResult{RowsAffected: tx.RowsAffected}, nil
}

func (g *DBGateway) query(ctx context.Context, statement string, args []interface{}) (*QueryResult, error) {
	rows, err := g.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}

	result := &QueryResult{Rows: []Row{}}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}

	result.RowsAffected = int64(len(result.Rows))
	return result, nil
}

// returnsRows reports whether statement produces a result set.
func returnsRows(statement string) bool {
	s := strings.ToUpper(strings.TrimSpace(statement))
	return strings.HasPrefix(s, "SELECT") ||
		strings.HasPrefix(s, "WITH") ||
		strings.Contains(s, " RETURNING ")
}
