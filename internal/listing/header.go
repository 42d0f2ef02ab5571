package listing

import "fmt"

// headerMap maps column position to column name, built once per table from
// the header row and passed as plain data into the record builder. Names
// outside the required set pass through untouched; they become extra-field
// keys during record building.
type headerMap []string

// resolveHeader validates the header row and builds the position lookup.
// Checks, in order: minimum width (at least the required set), duplicate
// names, required coverage. Any violation is batch-fatal: the header is
// load-bearing for every subsequent row, so there is no partial recovery.
func resolveHeader(header []any) (headerMap, bool) {
	if len(header) < len(requiredFields) {
		return nil, false
	}

	names := make(headerMap, len(header))
	seen := make(map[string]bool, len(header))
	for i, cell := range header {
		name := cellText(cell)
		if seen[name] {
			return nil, false
		}
		seen[name] = true
		names[i] = name
	}

	for _, f := range requiredFields {
		if !seen[f.Name] {
			return nil, false
		}
	}

	return names, true
}

// cellText names a column after its header cell. Non-text header cells are
// legal scalars; they name their column by printed form.
func cellText(cell any) string {
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
