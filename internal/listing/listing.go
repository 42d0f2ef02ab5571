// Package listing turns the untyped tabular payload returned by a
// spreadsheet values API into strongly typed job listings.
//
// The pipeline has four stages: envelope validation, header/row splitting,
// header resolution, and per-row record building plus validation. The first
// three operate on the whole table and fail the whole batch; the last is
// row-local. Nothing here performs I/O, retains state between calls, or
// surfaces errors to the caller — bad input yields fewer rows, not faults.
package listing

// JobListing is a validated job application record. Required columns map to
// the typed fields; every other column survives in ExtraFields keyed by its
// raw header name.
type JobListing struct {
	Company          string         `json:"company"`
	JobTitle         string         `json:"jobTitle"`
	Location         string         `json:"location"`
	AppStatus        string         `json:"appStatus"`
	URL              string         `json:"url"`
	Notes            string         `json:"notes"`
	DateSubmitted    string         `json:"dateSubmitted"`
	DateLastModified string         `json:"dateLastModified"`
	ExtraFields      map[string]any `json:"extraFields"`
}
