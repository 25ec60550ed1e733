package orders

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/printhaus/printshop/pkg/query"
)

// Filters narrows order listings.
type Filters struct {
	UserID *uuid.UUID
	Status *string
}

// FiltersFromQuery extracts listing filters from request query parameters.
// Unparseable user ids and unknown statuses are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if raw := values.Get("userId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			f.UserID = &id
		}
	}

	if status := values.Get("status"); ValidStatus(status) {
		f.Status = &status
	}

	return f
}

// Apply attaches the filters to a query builder.
func (f Filters) Apply(builder *query.Builder) {
	if f.UserID != nil {
		builder.WhereEquals("UserID", *f.UserID)
	}
	if f.Status != nil {
		builder.WhereEquals("Status", *f.Status)
	}
}
