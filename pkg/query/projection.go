// Package query provides SQL query construction utilities with
// struct-field-to-column projection mapping.
package query

import "strings"

// ProjectionMap maps view field names to database columns for a single
// aliased table, preserving projection order for SELECT lists.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	cols   map[string]string
	order  []string
}

// NewProjectionMap creates a projection for schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		cols:   make(map[string]string),
	}
}

// Project registers a column-to-field mapping and returns the map for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.cols[field] = column
	p.order = append(p.order, field)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference, e.g. "public.mockups m".
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the aliased column for a field. Unknown fields are
// returned unchanged so callers fail loudly in SQL rather than silently
// dropping conditions.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.cols[field]; ok {
		return p.alias + "." + col
	}
	return field
}

// Columns returns the full SELECT list in projection order.
func (p *ProjectionMap) Columns() string {
	cols := make([]string, len(p.order))
	for i, field := range p.order {
		cols[i] = p.alias + "." + p.cols[field]
	}
	return strings.Join(cols, ", ")
}
