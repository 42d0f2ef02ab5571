package listing

import "fmt"

// partialRecord is the transient artifact between row splitting and final
// validation: the required fields that had textual cells, plus everything
// else bucketed as extra data. Never exposed outside the package.
type partialRecord struct {
	fields map[string]string
	extra  map[string]any
}

// buildRecord assembles one candidate record from a data row. It is a pure
// function of (row, names): required columns accept only textual cells —
// anything else leaves the field unset for the validator to catch — and
// every other column is kept under its raw header name regardless of type.
// Rows shorter than the header simply never visit the trailing columns.
func buildRecord(row []any, names headerMap) partialRecord {
	rec := partialRecord{
		fields: make(map[string]string, len(requiredFields)),
		extra:  make(map[string]any),
	}

	for i, cell := range row {
		if i >= len(names) {
			break
		}
		name := names[i]
		if requiredSet[name] {
			if s, ok := cell.(string); ok {
				rec.fields[name] = s
			}
			continue
		}
		rec.extra[name] = cell
	}

	return rec
}

// validate checks the candidate against the full listing schema. This is the
// single point enforcing non-emptiness of company/jobTitle/appStatus, exact
// timestamp formatting, and URL shape; the builder's text check is
// deliberately weaker. A missing or malformed field fails the whole record.
func (p partialRecord) validate() (JobListing, error) {
	var l JobListing
	for _, f := range requiredFields {
		v, present := p.fields[f.Name]
		if !present {
			return JobListing{}, fmt.Errorf("field %q missing", f.Name)
		}
		if !f.Rule.valid(v) {
			return JobListing{}, fmt.Errorf("field %q invalid: %q", f.Name, v)
		}
		f.assign(&l, v)
	}
	l.ExtraFields = p.extra
	return l, nil
}
