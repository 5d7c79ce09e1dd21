package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 10, 20, 10},
		{"zero page falls back to first", 0, 25, 0, 25},
		{"negative page falls back to first", -4, 25, 0, 25},
		{"zero size uses default", 2, 0, 10, DefaultPageSize},
		{"oversized page size capped to default", 1, 500, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Fatalf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int64
		page, size   int
		wantPages    int
		wantCurrent  int
		wantPageSize int
	}{
		{"exact pages", 20, 1, 10, 2, 1, 10},
		{"partial last page", 21, 3, 10, 3, 3, 10},
		{"empty first page still one page", 0, 1, 10, 1, 1, 10},
		{"page past the end clamps", 5, 9, 10, 1, 1, 10},
		{"zero size uses default", 30, 1, 0, 3, 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPaginationInfo(tt.totalItems, tt.page, tt.size)
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.CurrentPage != tt.wantCurrent {
				t.Errorf("CurrentPage = %d, want %d", info.CurrentPage, tt.wantCurrent)
			}
			if info.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", info.PageSize, tt.wantPageSize)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}
