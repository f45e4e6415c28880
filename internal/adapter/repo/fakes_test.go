package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// scriptedSQL is an infra.SQLExecutor that records the last statement and
// replays canned results.
type scriptedSQL struct {
	lastQuery string
	lastArgs  []any

	execTag pgconn.CommandTag
	execErr error
	row     []any
	rowErr  error
	rows    [][]any
}

func (s *scriptedSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.lastQuery, s.lastArgs = query, args
	return s.execTag, s.execErr
}

func (s *scriptedSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.lastQuery, s.lastArgs = query, args
	if s.rowErr != nil {
		return fakeRow{err: s.rowErr}
	}
	if s.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{values: s.row}
}

func (s *scriptedSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.lastQuery, s.lastArgs = query, args
	return &fakeRows{data: s.rows}, nil
}

type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsBase) Conn() *pgx.Conn { return nil }

func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (rowsBase) RawValues() [][]byte { return nil }

type fakeRows struct {
	rowsBase
	data [][]any
	idx  int
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.data) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.idx == 0 || f.idx > len(f.data) {
		return pgx.ErrNoRows
	}
	return assign(dest, f.data[f.idx-1])
}

func (f *fakeRows) Err() error { return nil }

func (f *fakeRows) Close() {}

// assign copies values into the scan destinations; types must match exactly.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: got %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		src := reflect.ValueOf(v)
		if !src.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("scan: column %d: cannot assign %s to %s", i, src.Type(), target.Type())
		}
		target.Set(src)
	}
	return nil
}
