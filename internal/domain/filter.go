package domain

import "time"

// EntryStatusFilter narrows a listing to running entries, completed
// entries, or both.
type EntryStatusFilter string

const (
	EntryStatusAll       EntryStatusFilter = "all"
	EntryStatusActive    EntryStatusFilter = "active"
	EntryStatusCompleted EntryStatusFilter = "completed"
)

// IsValid checks if the filter value is one of the known values.
func (f EntryStatusFilter) IsValid() bool {
	switch f {
	case EntryStatusAll, EntryStatusActive, EntryStatusCompleted:
		return true
	}
	return false
}

// EntryFilter represents search criteria for time entries. All set
// fields are combined with AND semantics. StartDate and EndDate bound
// the entry start_time and must be supplied together.
type EntryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	ProjectID *int64
	TaskID    *int64
	Query     string
	Status    EntryStatusFilter
	Page      int
	Limit     int
}

// Offset returns the row offset for the requested page.
func (f EntryFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}

// Pagination describes the position of a page within a filtered result set.
// Total always counts the filtered set, not the whole table.
type Pagination struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// NewPagination computes pagination metadata for a filtered total.
func NewPagination(page, limit int, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: int64(page)*int64(limit) < total,
		HasPrev: page > 1,
	}
}
