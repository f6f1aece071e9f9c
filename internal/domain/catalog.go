package domain

import "time"

// ApplicationComponent is a system that owns interfaces.
type ApplicationComponent struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InterfaceType classifies interfaces (REST API, Kafka Topic, ...).
type InterfaceType struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
}

// Interface belongs to one application component and one interface type.
type Interface struct {
	ID                     int64
	Name                   string
	Description            *string
	ApplicationComponentID int64
	InterfaceTypeID        int64
	IsActive               bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
