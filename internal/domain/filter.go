package domain

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page holds offset/limit slice parameters for list queries.
type Page struct {
	Offset int
	Limit  int
}

// Normalize clamps the page to valid bounds. A non-positive limit becomes
// DefaultPageLimit.
func (p Page) Normalize() Page {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// TopicFilter narrows topic listings.
type TopicFilter struct {
	Environment *Environment
	Page        Page
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	Type *ReportType
	Page Page
}
