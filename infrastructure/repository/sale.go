// Package repository contém as implementações dos repositórios de leitura
// sobre os dados transacionais. O engine de métricas nunca emite escrita.
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
	salesTable = "sales s"
)

type SaleRepository interface {
	// SumCompleted soma a receita realizada (vendas COMPLETED) da janela
	SumCompleted(ctx context.Context, scope domain.AccessScope, from, to time.Time) (*domain.SalesTotals, error)
	// ListCompleted lista as vendas realizadas da janela para agregação em memória
	ListCompleted(ctx context.Context, scope domain.AccessScope, from, to time.Time) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) SumCompleted(ctx context.Context, scope domain.AccessScope, from, to time.Time) (*domain.SalesTotals, error) {
	queryBuilder := squirrel.
		Select(
			"COALESCE(SUM(s.total), 0)",
			"COUNT(*)",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		Where(squirrel.GtOrEq{"s.sale_date": from}).
		Where(squirrel.Lt{"s.sale_date": to}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySellerScope(queryBuilder, scope, "s.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.SalesTotals{}
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := row.Scan(&totals.Total, &totals.Count); err != nil {
		return nil, fmt.Errorf("erro ao escanear totais de vendas: %w", err)
	}

	return totals, nil
}

func (r *saleRepository) ListCompleted(ctx context.Context, scope domain.AccessScope, from, to time.Time) ([]*domain.Sale, error) {
	queryBuilder := squirrel.
		Select(
			"s.id",
			"s.seller_id",
			"s.customer_id",
			"s.sale_date",
			"s.total",
			"s.commission",
			"s.status",
		).
		From(salesTable).
		Where(squirrel.Eq{"s.status": domain.SaleStatusCompleted}).
		Where(squirrel.GtOrEq{"s.sale_date": from}).
		Where(squirrel.Lt{"s.sale_date": to}).
		OrderBy("s.sale_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySellerScope(queryBuilder, scope, "s.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Sale{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SellerID,
			&sale.CustomerID,
			&sale.Date,
			&sale.Total,
			&sale.Commission,
			&sale.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

// applySellerScope aplica o filtro de escopo de vendedor resolvido na entrada
// da requisição. Nenhum repositório deriva escopo por conta própria.
func applySellerScope(builder squirrel.SelectBuilder, scope domain.AccessScope, column string) squirrel.SelectBuilder {
	if scope.SellerID != nil {
		return builder.Where(squirrel.Eq{column: *scope.SellerID})
	}
	return builder
}
