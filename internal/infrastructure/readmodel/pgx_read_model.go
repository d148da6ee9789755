// Package readmodel reads report rows straight from PostgreSQL with pgx,
// bypassing the ORM and the aggregates.
package readmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/flexo/backend/internal/domain/pricing"
	"github.com/flexo/backend/internal/domain/production"
	"github.com/flexo/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderColumns = `o.id::text, o.number, o.created_at, o.customer_id::text, c.name,
	o.product_type, COALESCE(o.description, ''), o.status, o.price::text,
	o.is_replacement, o.replaced_order_number, COALESCE(o.replacement_reason, ''),
	COALESCE(o.responsible, ''), o.corrugated, o.die_cut`

// querier is the subset of *pgxpool.Pool the read model needs
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PgxReadModel implements report.ReadModel on a pgx pool
type PgxReadModel struct {
	db     querier
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Connect opens a pool on dsn and pings it
func Connect(ctx context.Context, dsn string, maxConns int32, logger *zap.Logger) (*PgxReadModel, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse read model dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open read model pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping read model: %w", err)
	}
	rm := newPgxReadModel(pool, logger)
	rm.pool = pool
	return rm, nil
}

func newPgxReadModel(db querier, logger *zap.Logger) *PgxReadModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PgxReadModel{db: db, logger: logger}
}

// Close releases the pool
func (r *PgxReadModel) Close() {
	if r != nil && r.pool != nil {
		r.pool.Close()
	}
}

// Orders returns the non-cancelled orders created in the period
func (r *PgxReadModel) Orders(ctx context.Context, filter report.OrderFilter) ([]report.OrderRow, error) {
	sql, args := ordersQuery(filter, false)
	return r.query(ctx, sql, args)
}

// Replacements returns the non-cancelled replacement orders of the period
func (r *PgxReadModel) Replacements(ctx context.Context, period report.Period) ([]report.OrderRow, error) {
	sql, args := ordersQuery(report.OrderFilter{Period: period}, true)
	return r.query(ctx, sql, args)
}

// ordersQuery builds the row query with positional arguments
func ordersQuery(filter report.OrderFilter, replacementsOnly bool) (string, []any) {
	args := []any{filter.From, filter.End(), string(production.StatusCancelled)}
	where := []string{"o.created_at >= $1", "o.created_at < $2", "o.status <> $3"}

	if filter.CustomerID != nil {
		args = append(args, *filter.CustomerID)
		where = append(where, fmt.Sprintf("o.customer_id = $%d", len(args)))
	}
	if filter.ProductType != "" {
		args = append(args, string(filter.ProductType))
		where = append(where, fmt.Sprintf("o.product_type = $%d", len(args)))
	}
	if replacementsOnly {
		where = append(where, "o.is_replacement")
	}

	sql := "SELECT " + orderColumns + `
	FROM service_orders o
	JOIN customers c ON c.id = o.customer_id
	WHERE ` + strings.Join(where, " AND ") + `
	ORDER BY o.number`
	return sql, args
}

func (r *PgxReadModel) query(ctx context.Context, sql string, args []any) ([]report.OrderRow, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query report rows: %w", err)
	}
	defer rows.Close()

	out := []report.OrderRow{}
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}
	r.logger.Debug("report rows read", zap.Int("rows", len(out)))
	return out, nil
}

func scanRow(rows pgx.Rows) (report.OrderRow, error) {
	var (
		row                              report.OrderRow
		id, customerID, price            string
		productType, status, responsible string
		corrugated, dieCut               []byte
	)
	err := rows.Scan(
		&id, &row.Number, &row.CreatedAt, &customerID, &row.CustomerName,
		&productType, &row.Description, &status, &price,
		&row.IsReplacement, &row.ReplacedOrderNumber, &row.ReplacementReason,
		&responsible, &corrugated, &dieCut,
	)
	if err != nil {
		return row, fmt.Errorf("scan report row: %w", err)
	}

	if row.ID, err = uuid.Parse(id); err != nil {
		return row, fmt.Errorf("parse order id: %w", err)
	}
	if row.CustomerID, err = uuid.Parse(customerID); err != nil {
		return row, fmt.Errorf("parse customer id: %w", err)
	}
	if row.Price, err = decimal.NewFromString(price); err != nil {
		return row, fmt.Errorf("parse price of order %d: %w", row.Number, err)
	}
	row.ProductType = pricing.ProductType(productType)
	row.Status = production.Status(status)
	row.Responsible = production.ResponsibleParty(responsible)

	if len(corrugated) > 0 {
		row.Corrugated = &production.CorrugatedPrinterDetails{}
		if err := json.Unmarshal(corrugated, row.Corrugated); err != nil {
			return row, fmt.Errorf("decode corrugated details of order %d: %w", row.Number, err)
		}
	}
	if len(dieCut) > 0 {
		row.DieCut = &production.DieCutBlockDetails{}
		if err := json.Unmarshal(dieCut, row.DieCut); err != nil {
			return row, fmt.Errorf("decode die-cut details of order %d: %w", row.Number, err)
		}
	}
	return row, nil
}

var _ report.ReadModel = (*PgxReadModel)(nil)
