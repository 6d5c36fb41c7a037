package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		total    int64
		expected Pagination
	}{
		{
			name: "first page of several",
			page: 1, limit: 10, total: 25,
			expected: Pagination{Page: 1, Limit: 10, Total: 25, Pages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page",
			page: 2, limit: 10, total: 25,
			expected: Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "last partial page",
			page: 3, limit: 10, total: 25,
			expected: Pagination{Page: 3, Limit: 10, Total: 25, Pages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "exact multiple of limit",
			page: 2, limit: 10, total: 20,
			expected: Pagination{Page: 2, Limit: 10, Total: 20, Pages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "empty result set",
			page: 1, limit: 10, total: 0,
			expected: Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "single result",
			page: 1, limit: 50, total: 1,
			expected: Pagination{Page: 1, Limit: 50, Total: 1, Pages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestEntryFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, EntryFilter{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 20, EntryFilter{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, 0, EntryFilter{Page: 0, Limit: 20}.Offset())
}

func TestEntryStatusFilter_IsValid(t *testing.T) {
	assert.True(t, EntryStatusAll.IsValid())
	assert.True(t, EntryStatusActive.IsValid())
	assert.True(t, EntryStatusCompleted.IsValid())
	assert.False(t, EntryStatusFilter("running").IsValid())
}

func TestTaskStatus_IsValid(t *testing.T) {
	assert.True(t, TaskStatusActive.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.True(t, TaskStatusPaused.IsValid())
	assert.False(t, TaskStatus("done").IsValid())
}
