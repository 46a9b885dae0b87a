package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

type PostgresLedgerRepository struct {
	db *sql.DB
}

func NewPostgresLedgerRepository(db *sql.DB) *PostgresLedgerRepository {
	return &PostgresLedgerRepository{db: db}
}

func (r *PostgresLedgerRepository) Append(entry models.StockOperation) (models.StockOperation, error) {
	query := `INSERT INTO stock_operations (item_id, operation_type, quantity, resulting_quantity, notes, operation_time)
		VALUES ($1, $2, $3, $4, $5, now()) RETURNING id, operation_time`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, entry.ItemID, entry.OperationType,
		entry.Quantity, entry.ResultingQuantity, entry.Notes).Scan(&entry.ID, &entry.Timestamp)
	return entry, err
}

func (r *PostgresLedgerRepository) ListByItem(itemID int, offset, limit *int) ([]models.StockOperation, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM stock_operations WHERE item_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, itemID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, item_id, operation_type, quantity, resulting_quantity, notes, operation_time
		FROM stock_operations WHERE item_id = $1 ORDER BY operation_time, id`
	args := []any{itemID}
	argIdx := 2
	if limit != nil && *limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *limit)
		argIdx++
	}
	if offset != nil && *offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := []models.StockOperation{}
	for rows.Next() {
		e, err := scanOperation(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

func scanOperation(rows *sql.Rows) (models.StockOperation, error) {
	var e models.StockOperation
	var notes sql.NullString
	err := rows.Scan(&e.ID, &e.ItemID, &e.OperationType, &e.Quantity,
		&e.ResultingQuantity, &notes, &e.Timestamp)
	e.Notes = notes.String
	return e, err
}
