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
	opportunitiesTable = "opportunities o"
)

type OpportunityRepository interface {
	// ListByStages lista as oportunidades do escopo nas etapas informadas;
	// stages vazio significa todas as etapas
	ListByStages(ctx context.Context, scope domain.AccessScope, stages []domain.Stage) ([]*domain.Opportunity, error)
	// ListForecastable lista as oportunidades elegíveis para previsão
	// (etapas QUALIFIED/NEGOTIATION/CLOSING com fechamento esperado a partir
	// de from), já enriquecidas com os nomes de cliente e vendedor
	ListForecastable(ctx context.Context, scope domain.AccessScope, from time.Time) ([]*domain.Opportunity, error)
	// CountByStage conta as oportunidades do escopo em uma etapa
	CountByStage(ctx context.Context, scope domain.AccessScope, stage domain.Stage) (int, error)
}

type opportunityRepository struct {
	conn postgres.Queryer
}

func NewOpportunityRepository(conn postgres.Queryer) OpportunityRepository {
	return &opportunityRepository{
		conn: conn,
	}
}

func (r *opportunityRepository) ListByStages(ctx context.Context, scope domain.AccessScope, stages []domain.Stage) ([]*domain.Opportunity, error) {
	queryBuilder := squirrel.
		Select(
			"o.id",
			"o.seller_id",
			"o.customer_id",
			"o.title",
			"o.value",
			"o.stage",
			"o.probability",
			"o.expected_close_date",
			"o.closed_at",
		).
		From(opportunitiesTable).
		OrderBy("o.expected_close_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(stages) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"o.stage": stages})
	}

	queryBuilder = applySellerScope(queryBuilder, scope, "o.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Opportunity{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	opportunities := make([]*domain.Opportunity, 0)
	for rows.Next() {
		opportunity, err := r.scanOpportunity(rows, false)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return opportunities, nil
}

func (r *opportunityRepository) ListForecastable(ctx context.Context, scope domain.AccessScope, from time.Time) ([]*domain.Opportunity, error) {
	queryBuilder := squirrel.
		Select(
			"o.id",
			"o.seller_id",
			"o.customer_id",
			"o.title",
			"o.value",
			"o.stage",
			"o.probability",
			"o.expected_close_date",
			"o.closed_at",
			"c.name AS customer_name",
			"u.name || ' ' || u.lastname AS seller_name",
		).
		From(opportunitiesTable).
		Join("customers c ON c.id = o.customer_id").
		Join("users u ON u.id = o.seller_id").
		Where(squirrel.Eq{"o.stage": domain.ForecastStages}).
		Where(squirrel.GtOrEq{"o.expected_close_date": from}).
		OrderBy("o.expected_close_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySellerScope(queryBuilder, scope, "o.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Opportunity{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	opportunities := make([]*domain.Opportunity, 0)
	for rows.Next() {
		opportunity, err := r.scanOpportunity(rows, true)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear oportunidade de previsão: %w", err)
		}
		opportunities = append(opportunities, opportunity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return opportunities, nil
}

func (r *opportunityRepository) CountByStage(ctx context.Context, scope domain.AccessScope, stage domain.Stage) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(opportunitiesTable).
		Where(squirrel.Eq{"o.stage": stage}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applySellerScope(queryBuilder, scope, "o.seller_id")

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao escanear contagem de oportunidades: %w", err)
	}

	return count, nil
}

func (r *opportunityRepository) scanOpportunity(rows *sql.Rows, withNames bool) (*domain.Opportunity, error) {
	opportunity := &domain.Opportunity{}

	dest := []interface{}{
		&opportunity.ID,
		&opportunity.SellerID,
		&opportunity.CustomerID,
		&opportunity.Title,
		&opportunity.Value,
		&opportunity.Stage,
		&opportunity.Probability,
		&opportunity.ExpectedCloseDate,
		&opportunity.ClosedAt,
	}
	if withNames {
		dest = append(dest, &opportunity.CustomerName, &opportunity.SellerName)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	return opportunity, nil
}
