package domain

import "time"

// DefaultProjectColor is the display colour assigned when a project is
// created without one.
const DefaultProjectColor = "#3B82F6"

// Project represents a billable project in the domain model.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Color       string     `json:"color"`
	BillingRate *float64   `json:"billing_rate,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProject creates a new Project with the given name and the default colour.
func NewProject(name string) Project {
	return Project{
		Name:  name,
		Color: DefaultProjectColor,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	if p.Name == "" {
		return false
	}
	if p.BillingRate != nil && *p.BillingRate < 0 {
		return false
	}
	return true
}

// Rate returns the billing rate, treating an absent rate as zero.
func (p Project) Rate() float64 {
	if p.BillingRate == nil {
		return 0
	}
	return *p.BillingRate
}

// ProjectTotals represents aggregated time for a single project.
type ProjectTotals struct {
	ProjectID     int64  `json:"project_id"`
	ProjectName   string `json:"project_name"`
	ProjectColor  string `json:"project_color"`
	TotalDuration int64  `json:"total_duration"`
	EntryCount    int64  `json:"entry_count"`
}
