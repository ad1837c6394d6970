package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/logging"
	"github.com/askdb-ai/askdb-engine/pkg/models"
)

const defaultQueryTimeout = 30 * time.Second

// Executor runs generated queries against the pool and shapes the rows
// into the engine's result set model, classifying each column by its
// PostgreSQL type OID.
type Executor struct {
	db      *DB
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecutor creates an executor with the default per-query timeout.
func NewExecutor(db *DB, logger *zap.Logger) *Executor {
	return &Executor{
		db:      db,
		timeout: defaultQueryTimeout,
		logger:  logger,
	}
}

// Execute runs one query and materializes all rows.
func (e *Executor) Execute(ctx context.Context, query string) (*models.ResultSet, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	e.logger.Debug("executing query",
		zap.String("query", logging.TruncateQuery(query)))

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %s", logging.SanitizeError(err))
	}
	defer rows.Close()

	result := &models.ResultSet{}
	for _, fd := range rows.FieldDescriptions() {
		result.Columns = append(result.Columns, models.ResultColumn{
			Name: fd.Name,
			Kind: classifyOID(fd.DataTypeOID),
		})
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %s", logging.SanitizeError(err))
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %s", logging.SanitizeError(err))
	}

	e.logger.Info("query executed",
		zap.Int("rows", result.RowCount()),
		zap.Int("columns", len(result.Columns)))

	return result, nil
}

// classifyOID maps a PostgreSQL type OID to the coarse column kind the
// chart rules care about. Anything unrecognized counts as text.
func classifyOID(oid uint32) models.ColumnKind {
	switch oid {
	case pgtype.Int2OID, pgtype.Int4OID, pgtype.Int8OID,
		pgtype.Float4OID, pgtype.Float8OID, pgtype.NumericOID:
		return models.ColumnNumeric
	case pgtype.DateOID, pgtype.TimestampOID, pgtype.TimestamptzOID,
		pgtype.TimeOID, pgtype.TimetzOID, pgtype.IntervalOID:
		return models.ColumnTemporal
	default:
		return models.ColumnText
	}
}
