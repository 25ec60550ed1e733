package mockups

import (
	"net/url"

	"github.com/printhaus/printshop/pkg/query"
)

// Filters narrows mockup listings by association.
type Filters struct {
	OwnerID *string
	OrderID *string
}

// FiltersFromQuery extracts listing filters from request query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if owner := values.Get("ownerId"); owner != "" {
		f.OwnerID = &owner
	}

	if order := values.Get("orderId"); order != "" {
		f.OrderID = &order
	}

	return f
}

// Apply attaches the filters to a query builder.
func (f Filters) Apply(builder *query.Builder) {
	if f.OwnerID != nil {
		builder.WhereEquals("OwnerID", *f.OwnerID)
	}
	if f.OrderID != nil {
		builder.WhereEquals("OrderID", *f.OrderID)
	}
}
