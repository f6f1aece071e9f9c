// Package catalog implements persistence for application components,
// interface types and interfaces.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Application components
// ---------------------------------------------------------------------------

// CreateComponent inserts a component. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) CreateComponent(ctx context.Context, name string, description *string) (*domain.ApplicationComponent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert("application_components").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id, name, description, is_active, created_at, updated_at")

	c, err := scanComponent(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "application_component", name)
	}
	return c, nil
}

// ListComponents returns every component ordered by id.
func (r *Repo) ListComponents(ctx context.Context) ([]domain.ApplicationComponent, error) {
	b := postgres.Builder().
		Select("id", "name", "description", "is_active", "created_at", "updated_at").
		From("application_components").
		OrderBy("id")

	return collect(ctx, r, b, "list application components", scanComponent)
}

// ---------------------------------------------------------------------------
// Interface types
// ---------------------------------------------------------------------------

// CreateInterfaceType inserts an interface type. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) CreateInterfaceType(ctx context.Context, name string, description *string) (*domain.InterfaceType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert("interface_types").
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING id, name, description, created_at")

	it, err := scanInterfaceType(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "interface_type", name)
	}
	return it, nil
}

// ListInterfaceTypes returns every interface type ordered by id.
func (r *Repo) ListInterfaceTypes(ctx context.Context) ([]domain.InterfaceType, error) {
	b := postgres.Builder().
		Select("id", "name", "description", "created_at").
		From("interface_types").
		OrderBy("id")

	return collect(ctx, r, b, "list interface types", scanInterfaceType)
}

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// CreateInterface inserts an interface. An unknown component or type yields
// domain.ErrNotFound through the foreign keys.
func (r *Repo) CreateInterface(ctx context.Context, in domain.Interface) (*domain.Interface, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Insert("interfaces").
		Columns("name", "description", "application_component_id", "interface_type_id").
		Values(in.Name, in.Description, in.ApplicationComponentID, in.InterfaceTypeID).
		Suffix("RETURNING " + interfaceColumns)

	iface, err := scanInterface(postgres.QueryRowBuilt(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "interface", in.Name)
	}
	return iface, nil
}

// ListInterfaces returns every interface ordered by id.
func (r *Repo) ListInterfaces(ctx context.Context) ([]domain.Interface, error) {
	b := postgres.Builder().Select(interfaceColumns).From("interfaces").OrderBy("id")
	return collect(ctx, r, b, "list interfaces", scanInterface)
}

// InterfaceExists reports whether an interface with the given id exists.
func (r *Repo) InterfaceExists(ctx context.Context, id int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM interfaces WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("interface exists: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

const interfaceColumns = "id, name, description, application_component_id, interface_type_id, is_active, created_at, updated_at"

type sqlizer interface {
	ToSql() (string, []any, error)
}

func collect[T any](ctx context.Context, r *Repo, b sqlizer, op string, scan func(pgx.Row) (*T, error)) ([]T, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func scanComponent(row pgx.Row) (*domain.ApplicationComponent, error) {
	var c domain.ApplicationComponent
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanInterfaceType(row pgx.Row) (*domain.InterfaceType, error) {
	var it domain.InterfaceType
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func scanInterface(row pgx.Row) (*domain.Interface, error) {
	var i domain.Interface
	if err := row.Scan(
		&i.ID, &i.Name, &i.Description, &i.ApplicationComponentID, &i.InterfaceTypeID,
		&i.IsActive, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}
