package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/salesflow/metrics-api/infrastructure/database/postgres"
	"github.com/salesflow/metrics-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	// GetByIDs busca os metadados de exibição dos produtos informados.
	// Produtos removidos do catálogo simplesmente não aparecem no resultado.
	GetByIDs(ctx context.Context, ids []int) ([]*domain.Product, error)
}

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int) ([]*domain.Product, error) {
	if len(ids) == 0 {
		return []*domain.Product{}, nil
	}

	queryBuilder := squirrel.
		Select("p.id", "p.name", "p.category").
		From(productsTable).
		Where(squirrel.Eq{"p.id": ids}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Product{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, len(ids))
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
