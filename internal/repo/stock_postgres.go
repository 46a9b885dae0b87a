package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

// PostgresStockStore commits a stock operation in a single transaction:
// the item row update and the ledger insert either both land or neither does.
type PostgresStockStore struct {
	db *sql.DB
}

func NewPostgresStockStore(db *sql.DB) *PostgresStockStore {
	return &PostgresStockStore{db: db}
}

// ApplyOperation implements StockStore.
func (s *PostgresStockStore) ApplyOperation(item models.Item, entry models.StockOperation) (models.Item, models.StockOperation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, models.StockOperation{}, fmt.Errorf("begin operation tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE items SET quantity = $1, status = $2, updated_at = $3 WHERE id = $4`
	res, err := tx.ExecContext(ctx, update, item.Quantity, item.Status, item.UpdatedAt, item.ID)
	if err != nil {
		return models.Item{}, models.StockOperation{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, models.StockOperation{}, ErrItemNotFound
	}

	insert := `INSERT INTO stock_operations (item_id, operation_type, quantity, resulting_quantity, notes, operation_time)
		VALUES ($1, $2, $3, $4, $5, now()) RETURNING id, operation_time`
	err = tx.QueryRowContext(ctx, insert, entry.ItemID, entry.OperationType,
		entry.Quantity, entry.ResultingQuantity, entry.Notes).Scan(&entry.ID, &entry.Timestamp)
	if err != nil {
		return models.Item{}, models.StockOperation{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, models.StockOperation{}, fmt.Errorf("commit operation tx: %w", err)
	}
	return item, entry, nil
}

var _ StockStore = (*PostgresStockStore)(nil)
var _ StockStore = (*InMemoryStockStore)(nil)
