package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/salesflow/metrics-api/infrastructure/database/postgres"
	"github.com/salesflow/metrics-api/internal/domain"
)

const (
	lineItemsTable = "line_items li"
)

type LineItemRepository interface {
	// TopProductSales soma quantidade e subtotal dos itens de vendas
	// realizadas na janela, agrupados por produto e ordenados por subtotal
	// decrescente. As somas brutas incluem produtos que já não existem no
	// catálogo; o enriquecimento com metadados é responsabilidade do caller.
	TopProductSales(ctx context.Context, scope domain.AccessScope, from, to time.Time, limit uint64) ([]*domain.ProductSales, error)
}

type lineItemRepository struct {
	conn postgres.Queryer
}

func NewLineItemRepository(conn postgres.Queryer) LineItemRepository {
	return &lineItemRepository{
		conn: conn,
	}
}

func (r *lineItemRepository) TopProductSales(ctx context.Context, scope domain.AccessScope, from, to time.Time, limit uint64) ([]*domain.ProductSales, error) {
	queryBuilder := squirrel.
		Select(
			"li.product_id",
			"COALESCE(SUM(li.quantity), 0)",
			"COALESCE(SUM(li.subtotal), 0)",
		).
		From(lineItemsTable).
		Join("sales s ON s.id = li.sale_id").
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		Where(squirrel.GtOrEq{"s.sale_date": from}).
		Where(squirrel.Lt{"s.sale_date": to}).
		GroupBy("li.product_id").
		OrderBy("SUM(li.subtotal) DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySellerScope(queryBuilder, scope, "s.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.ProductSales{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.ProductSales, 0)
	for rows.Next() {
		product := &domain.ProductSales{}
		if err := rows.Scan(&product.ProductID, &product.Quantity, &product.Subtotal); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendas por produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
