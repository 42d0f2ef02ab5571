package listing

// rawTable is the validated envelope, split eagerly into the header row and
// the data rows. It never outlives a single ParseJobListings call.
type rawTable struct {
	header []any
	rows   [][]any
}

// extractTable checks the outer shape of an untyped API payload: an object
// with a "values" array of at least two non-empty rows (header plus one data
// row), every cell a scalar. Returns ok=false on any violation rather than
// an error, and never panics — the caller treats a rejected envelope as an
// empty batch.
func extractTable(apiData any) (rawTable, bool) {
	obj, ok := apiData.(map[string]any)
	if !ok {
		return rawTable{}, false
	}
	values, ok := obj["values"].([]any)
	if !ok || len(values) < 2 {
		return rawTable{}, false
	}

	rows := make([][]any, 0, len(values))
	for _, rv := range values {
		row, ok := rv.([]any)
		if !ok || len(row) == 0 {
			return rawTable{}, false
		}
		for _, cell := range row {
			if !isScalar(cell) {
				return rawTable{}, false
			}
		}
		rows = append(rows, row)
	}

	return rawTable{header: rows[0], rows: rows[1:]}, true
}

// isScalar reports whether a cell is one of the three value kinds the sheet
// API may return: text, number, or boolean. Anything else (nested arrays,
// objects, null) invalidates the whole envelope.
func isScalar(cell any) bool {
	switch cell.(type) {
	case string, bool, float64, int, int64:
		return true
	}
	return false
}
