package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb-ai/askdb-engine/pkg/logging"
	"github.com/askdb-ai/askdb-engine/pkg/models"
)

const introspectQuery = `
SELECT table_name, column_name
FROM information_schema.columns
WHERE table_schema = 'public'
ORDER BY table_name, ordinal_position`

// IntrospectSchema reads the public schema's tables and columns in a
// stable order: tables alphabetically, columns by ordinal position. The
// order matters because downstream column bindings always pick the first
// declared match.
func (e *Executor) IntrospectSchema(ctx context.Context) (models.Schema, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	rows, err := e.db.Query(ctx, introspectQuery)
	if err != nil {
		return nil, fmt.Errorf("introspect schema: %s", logging.SanitizeError(err))
	}
	defer rows.Close()

	var schema models.Schema
	for rows.Next() {
		var tableName, columnName string
		if err := rows.Scan(&tableName, &columnName); err != nil {
			return nil, fmt.Errorf("scan column row: %s", logging.SanitizeError(err))
		}

		if len(schema) == 0 || schema[len(schema)-1].Name != tableName {
			schema = append(schema, models.SchemaTable{Name: tableName})
		}
		last := &schema[len(schema)-1]
		last.Columns = append(last.Columns, columnName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate column rows: %s", logging.SanitizeError(err))
	}

	e.logger.Info("schema introspected",
		zap.Int("tables", len(schema)),
		zap.Int("columns", schema.TotalColumns()))

	return schema, nil
}
