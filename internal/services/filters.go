package services

import (
	"net/url"
	"strconv"

	"github.com/printhaus/printshop/pkg/query"
)

// Filters narrows catalog listings.
type Filters struct {
	Category *string
	IsActive *bool
}

// FiltersFromQuery extracts listing filters from request query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if category := values.Get("category"); category != "" {
		f.Category = &category
	}

	if raw := values.Get("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			f.IsActive = &active
		}
	}

	return f
}

// Apply attaches the filters to a query builder.
func (f Filters) Apply(builder *query.Builder) {
	if f.Category != nil {
		builder.WhereEquals("Category", *f.Category)
	}
	if f.IsActive != nil {
		builder.WhereEquals("IsActive", *f.IsActive)
	}
}
