package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wosa-backend/internal/domain"
	"github.com/heartmarshall/wosa-backend/internal/service/catalog"
)

// catalogSeeder is the subset of the catalog service used for seeding.
type catalogSeeder interface {
	CreateApplicationComponent(ctx context.Context, input catalog.CreateNamedInput) (*domain.ApplicationComponent, error)
	CreateInterfaceType(ctx context.Context, input catalog.CreateNamedInput) (*domain.InterfaceType, error)
}

type seedEntry struct {
	name        string
	description string
}

var defaultComponents = []seedEntry{
	{"VladSystem", "Sistema principal Vlad"},
	{"Kafka", "Sistema de mensageria Kafka"},
	{"Database", "Sistema de banco de dados"},
	{"API Gateway", "Gateway de API"},
}

var defaultInterfaceTypes = []seedEntry{
	{"REST API", "Interface REST API"},
	{"Kafka Topic", "Tópico Kafka"},
	{"Database Connection", "Conexão com banco de dados"},
	{"Message Queue", "Fila de mensagens"},
}

// SeedStats counts what SeedCatalog inserted and what already existed.
type SeedStats struct {
	Created int
	Skipped int
}

// SeedCatalog inserts the default application components and interface
// types. Entries whose name is already taken are skipped, so the call is
// safe to repeat.
func SeedCatalog(ctx context.Context, svc catalogSeeder, log *slog.Logger) (SeedStats, error) {
	var stats SeedStats

	for _, e := range defaultComponents {
		desc := e.description
		_, err := svc.CreateApplicationComponent(ctx, catalog.CreateNamedInput{Name: e.name, Description: &desc})
		if err := stats.record(log, "application_component", e.name, err); err != nil {
			return stats, err
		}
	}
	for _, e := range defaultInterfaceTypes {
		desc := e.description
		_, err := svc.CreateInterfaceType(ctx, catalog.CreateNamedInput{Name: e.name, Description: &desc})
		if err := stats.record(log, "interface_type", e.name, err); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

func (s *SeedStats) record(log *slog.Logger, kind, name string, err error) error {
	switch {
	case err == nil:
		s.Created++
		log.Info("seed created", slog.String("kind", kind), slog.String("name", name))
	case errors.Is(err, domain.ErrConflict):
		s.Skipped++
	default:
		return fmt.Errorf("seed %s %q: %w", kind, name, err)
	}
	return nil
}
