package listing

import "log/slog"

// rowOutcome is the explicit per-row result of the build and validate
// stages. Keeping failure as data, filtered once at the end, makes the drop
// policy visible instead of burying it in nested conditionals.
type rowOutcome struct {
	listing JobListing
	ok      bool
	reason  string
}

// ParseJobListings converts a raw spreadsheet payload into validated job
// listings. It is the entire public surface of the pipeline.
//
// The payload must look like {"values": [[...], ...]} with the first row
// naming the columns. An envelope or header problem empties the whole batch;
// a bad data row drops only that row. No input makes this function return an
// error or panic: sheet data is hand-edited and frequently malformed, so the
// pipeline optimizes for best-effort extraction over strictness. Drops are
// visible at debug log level only.
func ParseJobListings(apiData any) []JobListing {
	table, ok := extractTable(apiData)
	if !ok {
		slog.Debug("listing parse: payload envelope rejected")
		return []JobListing{}
	}

	names, ok := resolveHeader(table.header)
	if !ok {
		slog.Debug("listing parse: header rejected", "columns", len(table.header))
		return []JobListing{}
	}

	outcomes := make([]rowOutcome, len(table.rows))
	for i, row := range table.rows {
		outcomes[i] = parseRow(row, names)
	}

	listings := make([]JobListing, 0, len(outcomes))
	for i, o := range outcomes {
		if !o.ok {
			// Data rows start at sheet row 2.
			slog.Debug("listing parse: row dropped", "row", i+2, "reason", o.reason)
			continue
		}
		listings = append(listings, o.listing)
	}
	return listings
}

// parseRow runs the row-local stages for a single data row.
func parseRow(row []any, names headerMap) rowOutcome {
	l, err := buildRecord(row, names).validate()
	if err != nil {
		return rowOutcome{reason: err.Error()}
	}
	return rowOutcome{listing: l, ok: true}
}
