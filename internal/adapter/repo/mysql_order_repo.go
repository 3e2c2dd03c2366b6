package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/google/uuid"
)

// MySQLOrderRepo stores orders with their line items denormalized as
// JSON, the way the hosted backend keeps them.
type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return domain.Order{}, err
	}

	o.ID = uuid.NewString()
	o.Status = domain.StatusPending

	_, err = r.db.ExecContext(ctx, `
INSERT INTO orders (id,customer_phone,customer_city,customer_address,items_json,subtotal,delivery_fee,total_amount,status,created_at,updated_at)
VALUES (?,?,?,?,?,?,?,?,?,NOW(),NOW())
`, o.ID, o.CustomerPhone, o.CustomerCity, o.CustomerAddress, items, o.Subtotal, o.DeliveryFee, o.TotalAmount, o.Status)
	if err != nil {
		return domain.Order{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT created_at FROM orders WHERE id=?`, o.ID)
	if err := row.Scan(&o.CreatedAt); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (r *MySQLOrderRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,customer_phone,customer_city,customer_address,items_json,subtotal,delivery_fee,total_amount,status,created_at
FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.CustomerPhone, &o.CustomerCity, &o.CustomerAddress, &items,
			&o.Subtotal, &o.DeliveryFee, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *MySQLOrderRepo) UpdateStatus(ctx context.Context, id string, to domain.Status) error {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET status = ?, updated_at = NOW()
        WHERE id = ?`,
		to, id,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
