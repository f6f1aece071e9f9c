package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wosa-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedFile inserts a pending uploaded file with a unique name.
func SeedFile(t *testing.T, pool *pgxpool.Pool) domain.UploadedFile {
	t.Helper()

	f := domain.UploadedFile{
		Name:         "seed-" + UniqueSuffix() + ".json",
		OriginalName: "seed.json",
		FileSize:     128,
		Status:       domain.FileStatusPending,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO files (name, original_name, file_size, status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, upload_date`,
		f.Name, f.OriginalName, f.FileSize, string(f.Status),
	).Scan(&f.ID, &f.UploadDate)
	if err != nil {
		t.Fatalf("testhelper: SeedFile: %v", err)
	}

	return f
}

// TopicSeed controls the columns SeedTopic sets. Zero values fall back to
// defaults; LastMessageDate nil stores NULL.
type TopicSeed struct {
	Name            string
	Environment     *string
	InterfaceID     *int64
	LastMessageDate *time.Time
	UpdatedAt       *time.Time
	Producers       []string
	Consumers       []string
}

// SeedTopic inserts a topic owned by fileID plus its producer and consumer rows.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, fileID int64, s TopicSeed) int64 {
	t.Helper()
	ctx := context.Background()

	if s.Name == "" {
		s.Name = "topic-" + UniqueSuffix()
	}
	updatedAt := time.Now().UTC()
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO topics (name, file_id, interface_id, environment, last_message_date, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		s.Name, fileID, s.InterfaceID, s.Environment, s.LastMessageDate, updatedAt,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic insert topic: %v", err)
	}

	for _, p := range s.Producers {
		if _, err := pool.Exec(ctx,
			`INSERT INTO topic_producers (topic_id, producer_name) VALUES ($1, $2)`, id, p,
		); err != nil {
			t.Fatalf("testhelper: SeedTopic insert producer: %v", err)
		}
	}
	for _, c := range s.Consumers {
		if _, err := pool.Exec(ctx,
			`INSERT INTO topic_consumers (topic_id, consumer_name) VALUES ($1, $2)`, id, c,
		); err != nil {
			t.Fatalf("testhelper: SeedTopic insert consumer: %v", err)
		}
	}

	return id
}

// SeedComponent inserts an application component with a unique name.
func SeedComponent(t *testing.T, pool *pgxpool.Pool) domain.ApplicationComponent {
	t.Helper()

	c := domain.ApplicationComponent{Name: "component-" + UniqueSuffix(), IsActive: true}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO application_components (name) VALUES ($1) RETURNING id, created_at, updated_at`,
		c.Name,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComponent: %v", err)
	}
	return c
}

// SeedInterfaceType inserts an interface type with a unique name.
func SeedInterfaceType(t *testing.T, pool *pgxpool.Pool) domain.InterfaceType {
	t.Helper()

	it := domain.InterfaceType{Name: "type-" + UniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO interface_types (name) VALUES ($1) RETURNING id, created_at`,
		it.Name,
	).Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInterfaceType: %v", err)
	}
	return it
}

// SeedInterface inserts an interface under a fresh component and type.
func SeedInterface(t *testing.T, pool *pgxpool.Pool) domain.Interface {
	t.Helper()

	comp := SeedComponent(t, pool)
	typ := SeedInterfaceType(t, pool)

	iface := domain.Interface{
		Name:                   "iface-" + UniqueSuffix(),
		ApplicationComponentID: comp.ID,
		InterfaceTypeID:        typ.ID,
		IsActive:               true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO interfaces (name, application_component_id, interface_type_id)
		 VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		iface.Name, iface.ApplicationComponentID, iface.InterfaceTypeID,
	).Scan(&iface.ID, &iface.CreatedAt, &iface.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInterface: %v", err)
	}
	return iface
}

// SeedUser inserts an active user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	u := domain.User{
		Name:     "Test User " + suffix,
		Email:    "user-" + suffix + "@example.com",
		IsActive: true,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		u.Name, u.Email,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}
