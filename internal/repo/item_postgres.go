package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

const itemColumns = `id, name, description, quantity, unit_price, low_stock_threshold, status, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (models.Item, error) {
	var it models.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Quantity, &it.UnitPrice,
		&it.LowStockThreshold, &it.Status, &it.CreatedAt, &it.UpdatedAt)
	return it, err
}

func (r *PostgresItemRepository) Create(it models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, description, quantity, unit_price, low_stock_threshold, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, it.Name, it.Description, it.Quantity,
		it.UnitPrice, it.LowStockThreshold, it.Status, it.CreatedAt, it.UpdatedAt).Scan(&it.ID)
	return it, err
}

func (r *PostgresItemRepository) GetAll() ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`
	return r.queryItems(query)
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) Update(it models.Item) (models.Item, error) {
	query := `UPDATE items SET name = $1, description = $2, quantity = $3, unit_price = $4,
		low_stock_threshold = $5, status = $6, updated_at = $7 WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Quantity,
		it.UnitPrice, it.LowStockThreshold, it.Status, it.UpdatedAt, it.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return it, nil
}

func (r *PostgresItemRepository) Delete(id int) error {
	query := `DELETE FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresItemRepository) Search(keyword string) ([]models.Item, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return r.GetAll()
	}
	query := `SELECT ` + itemColumns + ` FROM items
		WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY id`
	return r.queryItems(query, "%"+keyword+"%")
}

func (r *PostgresItemRepository) FindLowStock() ([]models.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status <> $1 ORDER BY id`
	return r.queryItems(query, models.StatusNormal)
}

func (r *PostgresItemRepository) queryItems(query string, args ...any) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
