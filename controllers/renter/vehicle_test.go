package renter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"1", "10", 1, 10},
		{"3", "25", 3, 25},
		{"0", "0", 1, 10},
		{"-2", "-5", 1, 10},
		{"abc", "xyz", 1, 10},
		{"", "", 1, 10},
	}
	for _, tt := range tests {
		page, limit := clampPagination(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, page, "page %q", tt.page)
		assert.Equal(t, tt.wantLimit, limit, "limit %q", tt.limit)
	}
}
