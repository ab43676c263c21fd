package products

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new product repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns all marketplace products
func (r *Repository) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, queryListAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Product

	for rows.Next() {
		var product Product

		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.CompanyName,
			&product.Category,
			&product.ShortDescription,
		)

		if err != nil {
			return nil, err
		}

		result = append(result, product)
	}

	return result, rows.Err()
}
