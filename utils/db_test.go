package utils

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Govind-619/Shelfnotes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBGateway_Execute(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		args      []interface{}
		setupMock func(mock sqlmock.Sqlmock)
		want      *QueryResult
		wantErr   bool
	}{
		{
			name:      "select returns rows keyed by column",
			statement: "SELECT id, title FROM books WHERE id = ?",
			args:      []interface{}{int64(7)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title FROM books WHERE id = $1")).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(int64(7), []byte("Dune")))
			},
			want: &QueryResult{
				Rows:         []Row{{"id": int64(7), "title": "Dune"}},
				RowsAffected: 1,
			},
		},
		{
			name:      "select with no match returns empty rows",
			statement: "SELECT * FROM notes WHERE book_id = ?",
			args:      []interface{}{int64(1)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM notes WHERE book_id = $1")).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "content"}))
			},
			want: &QueryResult{Rows: []Row{}},
		},
		{
			name:      "mutation reports affected rows",
			statement: "DELETE FROM books WHERE id = ?",
			args:      []interface{}{int64(3)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM books WHERE id = $1")).
					WithArgs(int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: &QueryResult{RowsAffected: 1},
		},
		{
			name:      "nil arguments are bound, not dropped",
			statement: "INSERT INTO notes (content, book_id) VALUES (?, ?)",
			args:      []interface{}{nil, int64(2)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO notes (content, book_id) VALUES ($1, $2)")).
					WithArgs(nil, int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: &QueryResult{RowsAffected: 1},
		},
		{
			name:      "query error is a data access failure",
			statement: "SELECT * FROM books ORDER BY rating DESC",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM books ORDER BY rating DESC")).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name:      "exec error is a data access failure",
			statement: "UPDATE books SET title = ? WHERE id = ?",
			args:      []interface{}{"x", int64(1)},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE books SET title = $1 WHERE id = $2")).
					WithArgs("x", int64(1)).
					WillReturnError(errors.New("deadlock detected"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := testutil.NewMockDB(t)
			tt.setupMock(mock)

			got, err := NewGateway(db).Execute(context.Background(), tt.statement, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsDataAccessError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReturnsRows(t *testing.T) {
	assert.True(t, returnsRows("SELECT 1"))
	assert.True(t, returnsRows("  select * from books"))
	assert.True(t, returnsRows("WITH t AS (SELECT 1) SELECT * FROM t"))
	assert.True(t, returnsRows("INSERT INTO books (title) VALUES (?) RETURNING id"))
	assert.False(t, returnsRows("INSERT INTO books (title) VALUES (?)"))
	assert.False(t, returnsRows("UPDATE notes SET content = content || ? || ? WHERE id = ?"))
	assert.False(t, returnsRows("DELETE FROM notes WHERE id = ? AND book_id = ?"))
}
