package pagination_test

import (
	"net/url"
	"testing"

	"github.com/printhaus/printshop/pkg/pagination"
)

var testConfig = pagination.Config{DefaultPageSize: 50, MaxPageSize: 500}

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero values", 0, 0, 1, 50},
		{"negative page", -3, 10, 1, 10},
		{"valid values", 2, 25, 2, 25},
		{"exceeds max", 1, 10000, 1, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pagination.PageRequest{Page: tt.page, PageSize: tt.pageSize}
			req.Normalize(testConfig)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
		})
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	values, err := url.ParseQuery("page=2&limit=10&search=logo&sort=-CreatedAt")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}

	req := pagination.PageRequestFromQuery(values, testConfig)

	if req.Page != 2 {
		t.Errorf("Page = %d, want 2", req.Page)
	}
	if req.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", req.PageSize)
	}
	if req.Search == nil || *req.Search != "logo" {
		t.Error("Search not parsed")
	}
	if len(req.Sort) != 1 || req.Sort[0].Field != "CreatedAt" || !req.Sort[0].Descending {
		t.Errorf("Sort = %v, want descending CreatedAt", req.Sort)
	}
}

func TestPageRequestFromQuery_Defaults(t *testing.T) {
	req := pagination.PageRequestFromQuery(url.Values{}, testConfig)

	if req.Page != 1 {
		t.Errorf("Page = %d, want 1", req.Page)
	}
	if req.PageSize != 50 {
		t.Errorf("PageSize = %d, want default 50", req.PageSize)
	}
	if req.Search != nil {
		t.Errorf("Search = %q, want nil", *req.Search)
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		items          int
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"exact pages", 10, 100, 10, 10},
		{"partial last page", 5, 101, 10, 11},
		{"empty", 0, 0, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.items)
			result := pagination.NewPageResult(data, tt.total, 1, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Total != tt.total {
				t.Errorf("Total = %d, want %d", result.Total, tt.total)
			}
		})
	}
}

func TestNewPageResult_NilData(t *testing.T) {
	result := pagination.NewPageResult[string](nil, 0, 1, 10)

	if result.Data == nil {
		t.Error("Data should be an empty slice, not nil")
	}
	if len(result.Data) != 0 {
		t.Errorf("Data = %v, want empty", result.Data)
	}
}
