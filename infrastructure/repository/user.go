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
	usersTable = "users u"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	// GetUsersByIDs busca os dados de exibição dos vendedores do ranking
	GetUsersByIDs(ctx context.Context, ids []int) ([]*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	queryBuilder := r.selectUsers().
		Where(squirrel.Eq{"u.email": email})

	return r.queryOne(ctx, queryBuilder)
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	queryBuilder := r.selectUsers().
		Where(squirrel.Eq{"u.id": userID})

	return r.queryOne(ctx, queryBuilder)
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []int) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	queryBuilder := r.selectUsers().
		Where(squirrel.Eq{"u.id": ids})

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.User{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, len(ids))
	for rows.Next() {
		user := &domain.User{}
		if err := r.scanUser(rows.Scan, user); err != nil {
			return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return users, nil
}

func (r *userRepository) selectUsers() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"u.id",
			"u.name",
			"u.lastname",
			"u.email",
			"u.password_hash",
			"u.active",
			"u.role_id",
			"u.created_at",
			"u.updated_at",
		).
		From(usersTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *userRepository) queryOne(ctx context.Context, queryBuilder squirrel.SelectBuilder) (*domain.User, error) {
	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user := &domain.User{}
	row := r.conn.QueryRow(ctx, sqlQuery, args...)
	if err := r.scanUser(row.Scan, user); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear usuário: %w", err)
	}

	return user, nil
}

func (r *userRepository) scanUser(scan func(dest ...any) error, user *domain.User) error {
	return scan(
		&user.ID,
		&user.Name,
		&user.Lastname,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
