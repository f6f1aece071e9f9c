// Package idalloc answers id availability questions against the entity tables.
package idalloc

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wosa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// tables is the fixed entity to table whitelist. Only these identifiers ever
// reach SQL.
var tables = map[domain.EntityKind]string{
	domain.EntityKindFile:                 "files",
	domain.EntityKindApplicationComponent: "application_components",
	domain.EntityKindInterfaceType:        "interface_types",
	domain.EntityKindInterface:            "interfaces",
	domain.EntityKindTopic:                "topics",
	domain.EntityKindReport:               "reports",
}

// Repo provides id lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new id allocation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func tableFor(kind domain.EntityKind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", domain.NewValidationError("entity", fmt.Sprintf("unknown entity %q", kind))
	}
	return t, nil
}

// Exists reports whether a row with id exists in the entity's table.
func (r *Repo) Exists(ctx context.Context, kind domain.EntityKind, id int64) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().
		Select("1").From(table).Where(squirrel.Eq{"id": id}).Prefix("SELECT EXISTS (").Suffix(")")

	var exists bool
	if err := postgres.QueryRowBuilt(ctx, q, b).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s exists: %w", kind, err)
	}
	return exists, nil
}

// NextID returns max(id)+1 for the entity's table, or 1 when it is empty.
func (r *Repo) NextID(ctx context.Context, kind domain.EntityKind) (int64, error) {
	table, err := tableFor(kind)
	if err != nil {
		return 0, err
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Select("COALESCE(MAX(id), 0) + 1").From(table)

	var next int64
	if err := postgres.QueryRowBuilt(ctx, q, b).Scan(&next); err != nil {
		return 0, fmt.Errorf("%s next id: %w", kind, err)
	}
	return next, nil
}
