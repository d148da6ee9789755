package readmodel

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows replays fixed values through pgx.Rows
type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos-1], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	values := r.data[r.pos-1]
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d values", len(dest), len(values))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int64:
			*d = v.(int64)
		case *bool:
			*d = v.(bool)
		case *time.Time:
			*d = v.(time.Time)
		case *[]byte:
			if v != nil {
				*d = []byte(v.(string))
			}
		default:
			return fmt.Errorf("scan: unsupported destination %T", d)
		}
	}
	return nil
}

type fakeQuerier struct {
	sql  string
	args []any
	rows pgx.Rows
	err  error
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	q.args = args
	return q.rows, q.err
}

func period(t *testing.T) report.Period {
	t.Helper()
	p, err := report.NewPeriod(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestOrdersQuery(t *testing.T) {
	p := period(t)

	t.Run("period only", func(t *testing.T) {
		sql, args := ordersQuery(report.OrderFilter{Period: p}, false)
		assert.Contains(t, sql, "o.created_at >= $1 AND o.created_at < $2 AND o.status <> $3")
		assert.NotContains(t, sql, "$4")
		assert.Contains(t, sql, "ORDER BY o.number")
		require.Len(t, args, 3)
		assert.Equal(t, p.End(), args[1])
		assert.Equal(t, "cancelled", args[2])
	})

	t.Run("customer and product filters", func(t *testing.T) {
		customerID := uuid.New()
		sql, args := ordersQuery(report.OrderFilter{
			Period:      p,
			CustomerID:  &customerID,
			ProductType: pricing.ProductDieCutBlock,
		}, false)
		assert.Contains(t, sql, "o.customer_id = $4 AND o.product_type = $5")
		assert.Equal(t, []any{p.From, p.End(), "cancelled", customerID, "die_cut_block"}, args)
	})

	t.Run("replacements only", func(t *testing.T) {
		sql, _ := ordersQuery(report.OrderFilter{Period: p}, true)
		assert.Contains(t, sql, "AND o.is_replacement")
	})
}

func TestPgxReadModel_Orders(t *testing.T) {
	orderID := uuid.New()
	customerID := uuid.New()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{
		orderID.String(), int64(42), created, customerID.String(), "Caixas Paraná",
		"die_cut_block", "Faca caixa 40x30", "finished", "633.60",
		false, int64(0), "", "",
		nil, `{"origin":"imported","width_mm":"400","height_mm":"300","linear_meters":"0","quantity":1}`,
	}}}}
	rm := newPgxReadModel(q, nil)

	rows, err := rm.Orders(context.Background(), report.OrderFilter{Period: period(t)})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, orderID, row.ID)
	assert.Equal(t, customerID, row.CustomerID)
	assert.Equal(t, int64(42), row.Number)
	assert.Equal(t, "Caixas Paraná", row.CustomerName)
	assert.Equal(t, pricing.ProductDieCutBlock, row.ProductType)
	assert.Equal(t, production.StatusFinished, row.Status)
	assert.Equal(t, "633.6", row.Price.String())
	assert.Nil(t, row.Corrugated)
	require.NotNil(t, row.DieCut)
	assert.Equal(t, pricing.OriginImported, row.DieCut.Origin)
}

func TestPgxReadModel_Errors(t *testing.T) {
	t.Run("query error is wrapped", func(t *testing.T) {
		rm := newPgxReadModel(&fakeQuerier{err: errors.New("connection refused")}, nil)
		_, err := rm.Replacements(context.Background(), period(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query report rows")
	})

	t.Run("bad price", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{data: [][]any{{
			uuid.NewString(), int64(1), time.Now(), uuid.NewString(), "X",
			"cliche_corrugated", "", "pending", "abc",
			false, int64(0), "", "", nil, nil,
		}}}}
		_, err := newPgxReadModel(q, nil).Orders(context.Background(), report.OrderFilter{Period: period(t)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse price of order 1")
	})

	t.Run("iteration error", func(t *testing.T) {
		q := &fakeQuerier{rows: &fakeRows{err: errors.New("reset by peer")}}
		_, err := newPgxReadModel(q, nil).Orders(context.Background(), report.OrderFilter{Period: period(t)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "iterate report rows")
	})
}
