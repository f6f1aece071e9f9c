package domain

// FileStatus is the processing lifecycle state of an uploaded document.
type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusProcessing FileStatus = "processing"
	FileStatusCompleted  FileStatus = "completed"
	FileStatusError      FileStatus = "error"
)

func (s FileStatus) String() string { return string(s) }

func (s FileStatus) IsValid() bool {
	switch s {
	case FileStatusPending, FileStatusProcessing, FileStatusCompleted, FileStatusError:
		return true
	}
	return false
}

// HistoryAction is the kind of change recorded in a topic history row.
type HistoryAction string

const (
	HistoryActionCreated HistoryAction = "created"
	HistoryActionUpdated HistoryAction = "updated"
)

func (a HistoryAction) String() string { return string(a) }

// Environment is the deployment environment a topic belongs to.
type Environment string

const (
	EnvironmentDev  Environment = "dev"
	EnvironmentProd Environment = "prod"
	EnvironmentE2E  Environment = "e2e"
)

func (e Environment) String() string { return string(e) }

func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentDev, EnvironmentProd, EnvironmentE2E:
		return true
	}
	return false
}

// KnownEnvironments lists the environment tags a topic is expected to carry.
func KnownEnvironments() []Environment {
	return []Environment{EnvironmentDev, EnvironmentProd, EnvironmentE2E}
}

// EntityKind names a table that supports id allocation.
type EntityKind string

const (
	EntityKindFile                 EntityKind = "file"
	EntityKindApplicationComponent EntityKind = "application_component"
	EntityKindInterfaceType        EntityKind = "interface_type"
	EntityKindInterface            EntityKind = "interface"
	EntityKindTopic                EntityKind = "topic"
	EntityKindReport               EntityKind = "report"
)

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindFile, EntityKindApplicationComponent, EntityKindInterfaceType,
		EntityKindInterface, EntityKindTopic, EntityKindReport:
		return true
	}
	return false
}
