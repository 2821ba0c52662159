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
	customersTable = "customers c"
)

type CustomerRepository interface {
	CountActive(ctx context.Context) (int, error)
	CountAll(ctx context.Context) (int, error)
	// CountByType conta os clientes agrupados por tipo
	CountByType(ctx context.Context) ([]*domain.CustomerGroup, error)
	// TopIndustries devolve as indústrias com mais clientes, em ordem decrescente
	TopIndustries(ctx context.Context, limit uint64) ([]*domain.CustomerGroup, error)
}

type customerRepository struct {
	conn postgres.Queryer
}

func NewCustomerRepository(conn postgres.Queryer) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) CountActive(ctx context.Context) (int, error) {
	return r.count(ctx, squirrel.Eq{"c.status": domain.CustomerStatusActive})
}

func (r *customerRepository) CountAll(ctx context.Context) (int, error) {
	return r.count(ctx, nil)
}

func (r *customerRepository) count(ctx context.Context, where interface{}) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(customersTable).
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de clientes: %w", err)
	}

	return count, nil
}

func (r *customerRepository) CountByType(ctx context.Context) ([]*domain.CustomerGroup, error) {
	queryBuilder := squirrel.
		Select("c.type", "COUNT(*)").
		From(customersTable).
		GroupBy("c.type").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryGroups(ctx, queryBuilder)
}

func (r *customerRepository) TopIndustries(ctx context.Context, limit uint64) ([]*domain.CustomerGroup, error) {
	queryBuilder := squirrel.
		Select("c.industry", "COUNT(*)").
		From(customersTable).
		GroupBy("c.industry").
		OrderBy("COUNT(*) DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryGroups(ctx, queryBuilder)
}

func (r *customerRepository) queryGroups(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.CustomerGroup, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.CustomerGroup{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.CustomerGroup, 0)
	for rows.Next() {
		group := &domain.CustomerGroup{}
		if err := rows.Scan(&group.Key, &group.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de clientes: %w", err)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}
