package mockups_test

import (
	"net/url"
	"testing"

	"github.com/printhaus/printshop/internal/mockups"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantOwner *string
		wantOrder *string
	}{
		{"empty query", "", nil, nil},
		{"owner only", "ownerId=user-1", ptr("user-1"), nil},
		{"order only", "orderId=order-9", nil, ptr("order-9")},
		{"both", "ownerId=user-1&orderId=order-9", ptr("user-1"), ptr("order-9")},
		{"empty values ignored", "ownerId=&orderId=", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery failed: %v", err)
			}

			filters := mockups.FiltersFromQuery(values)

			assertStringPtr(t, "OwnerID", filters.OwnerID, tt.wantOwner)
			assertStringPtr(t, "OrderID", filters.OrderID, tt.wantOrder)
		})
	}
}

func ptr(s string) *string {
	return &s
}

func assertStringPtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %q, want nil", field, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %q", field, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %q, want %q", field, *got, *want)
	}
}
