package repo

import (
	"context"
	"database/sql"
	"encoding/json"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
	"github.com/google/uuid"
)

type MySQLCatalogRepo struct{ db *sql.DB }

func NewMySQLCatalogRepo(db *sql.DB) *MySQLCatalogRepo { return &MySQLCatalogRepo{db: db} }

func (r *MySQLCatalogRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,name,price,category,image_url,sizes_json,colors_json,created_at
FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		var sizes, colors []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.ImageURL, &sizes, &colors, &p.CreatedAt); err != nil {
			return nil, err
		}
		// Option lists are optional columns; a shape mismatch is a
		// fetch error, not a crash.
		if len(sizes) > 0 {
			if err := json.Unmarshal(sizes, &p.Sizes); err != nil {
				return nil, err
			}
		}
		if len(colors) > 0 {
			if err := json.Unmarshal(colors, &p.Colors); err != nil {
				return nil, err
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) AddProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return domain.Product{}, err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return domain.Product{}, err
	}

	p.ID = uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
INSERT INTO products (id,name,price,category,image_url,sizes_json,colors_json,created_at)
VALUES (?,?,?,?,?,?,?,NOW())
`, p.ID, p.Name, p.Price, p.Category, p.ImageURL, sizes, colors)
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

var _ usecase.CatalogRepo = (*MySQLCatalogRepo)(nil)
