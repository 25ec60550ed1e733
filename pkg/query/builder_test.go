package query_test

import (
	"strings"
	"testing"

	"github.com/printhaus/printshop/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "mockups", "m").
		Project("id", "ID").
		Project("original_name", "OriginalName").
		Project("owner_id", "OwnerID").
		Project("created_at", "CreatedAt")
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.mockups m"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, 20, "LIMIT 20", "OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20", "OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10", "OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "CreatedAt", Descending: true})
			sql, _ := b.BuildPage(tt.page, tt.pageSize)

			if !strings.Contains(sql, "SELECT m.id, m.original_name, m.owner_id, m.created_at FROM public.mockups m") {
				t.Errorf("BuildPage() missing select clause, got %q", sql)
			}
			if !strings.Contains(sql, "ORDER BY m.created_at DESC") {
				t.Errorf("BuildPage() missing order by, got %q", sql)
			}
			if !strings.Contains(sql, tt.wantLimit) || !strings.Contains(sql, tt.wantOffset) {
				t.Errorf("BuildPage() missing %q / %q, got %q", tt.wantLimit, tt.wantOffset, sql)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildSingle("ID", "abc")

	if !strings.Contains(sql, "WHERE m.id = $1") {
		t.Errorf("BuildSingle() missing where clause, got %q", sql)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestBuilder_WhereEquals_ParameterNumbering(t *testing.T) {
	b := query.NewBuilder(newTestProjection())
	b.WhereEquals("OwnerID", "user-1")
	b.WhereEquals("OriginalName", "design.png")

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "m.owner_id = $1") {
		t.Errorf("first condition not numbered $1, got %q", sql)
	}
	if !strings.Contains(sql, "m.original_name = $2") {
		t.Errorf("second condition not numbered $2, got %q", sql)
	}
	if !strings.Contains(sql, " AND ") {
		t.Errorf("conditions not joined with AND, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 values", args)
	}
}

func TestBuilder_WhereContains(t *testing.T) {
	search := "logo"
	b := query.NewBuilder(newTestProjection())
	b.WhereContains("OriginalName", &search)

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "m.original_name ILIKE $1") {
		t.Errorf("WhereContains() missing ILIKE clause, got %q", sql)
	}
	if len(args) != 1 || args[0] != "%logo%" {
		t.Errorf("args = %v, want [%%logo%%]", args)
	}
}

func TestBuilder_WhereContains_NilIgnored(t *testing.T) {
	b := query.NewBuilder(newTestProjection())
	b.WhereContains("OriginalName", nil)

	sql, _ := b.BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("nil search should add no condition, got %q", sql)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "logo"
	b := query.NewBuilder(newTestProjection())
	b.WhereSearch(&search, "OriginalName", "OwnerID")

	sql, args := b.BuildCount()

	if !strings.Contains(sql, "(m.original_name ILIKE $1 OR m.owner_id ILIKE $2)") {
		t.Errorf("WhereSearch() clause wrong, got %q", sql)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 values", args)
	}
}

func TestBuilder_OrderByFields_OverridesDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "CreatedAt", Descending: true})
	b.OrderByFields([]query.SortField{{Field: "OriginalName"}})

	sql, _ := b.BuildSelect()

	if !strings.Contains(sql, "ORDER BY m.original_name ASC") {
		t.Errorf("explicit sort not applied, got %q", sql)
	}
	if strings.Contains(sql, "created_at DESC") {
		t.Errorf("default sort should be replaced, got %q", sql)
	}
}
