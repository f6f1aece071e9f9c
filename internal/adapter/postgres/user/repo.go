// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

const returning = "RETURNING id, name, email, is_active, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("id", "name", "email", "is_active", "created_at", "updated_at").
		From("users").
		Where(squirrel.Eq{"id": id})

	u, err := scanUser(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// List returns users ordered by id.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("id", "name", "email", "is_active", "created_at", "updated_at").
		From("users").
		OrderBy("id").
		Offset(uint64(page.Offset)).
		Limit(uint64(page.Limit))

	rows, err := postgres.QueryBuilt(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name, email string, now time.Time) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert("users").
		Columns("name", "email", "created_at", "updated_at").
		Values(name, email, now, now).
		Suffix(returning)

	u, err := scanUser(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Update modifies name and/or email. Nil fields are left unchanged.
func (r *Repo) Update(ctx context.Context, id int64, name, email *string, now time.Time) (*domain.User, error) {
	b := postgres.Builder().Update("users").Set("updated_at", now)
	if name != nil {
		b = b.Set("name", *name)
	}
	if email != nil {
		b = b.Set("email", *email)
	}
	return r.updateOne(ctx, b, id)
}

// SetActive flips the is_active flag.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool, now time.Time) (*domain.User, error) {
	b := postgres.Builder().Update("users").
		Set("is_active", active).
		Set("updated_at", now)
	return r.updateOne(ctx, b, id)
}

// Delete removes a user. Returns domain.ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.ExecBuilt(ctx, q, postgres.Builder().Delete("users").Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) updateOne(ctx context.Context, b squirrel.UpdateBuilder, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b = b.Where(squirrel.Eq{"id": id}).Suffix(returning)
	u, err := scanUser(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
