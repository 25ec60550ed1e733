package query

import "strings"

// SortField identifies a view field and sort direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression into sort
// fields. A "-" prefix marks a field as descending, e.g. "-CreatedAt,Name".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		descending := false
		if strings.HasPrefix(part, "-") {
			descending = true
			part = part[1:]
		}

		if part != "" {
			fields = append(fields, SortField{Field: part, Descending: descending})
		}
	}

	return fields
}
