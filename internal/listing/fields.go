package listing

// fields.go defines the canonical listing schema.
//
// The required field set and the per-field validation rules derive from one
// ordered list so the two can never drift apart: membership checks, header
// coverage checks, and final record validation all walk requiredFields.

import (
	"net/url"
	"time"
)

// TimestampLayout is the accepted format for the date columns: ISO-8601 with
// millisecond precision, as written by spreadsheet automations.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// fieldRule identifies the validation applied to one required field.
type fieldRule int

const (
	ruleNonEmpty  fieldRule = iota // text, must not be empty
	ruleText                       // text, empty allowed
	ruleTimestamp                  // strict ISO-8601 timestamp
	ruleURL                        // empty, or a parseable absolute URL
)

// requiredField couples a column name with its validation rule and its
// assignment into the final JobListing.
type requiredField struct {
	Name   string
	Rule   fieldRule
	assign func(*JobListing, string)
}

// requiredFields is the canonical ordered set of columns every listing sheet
// must carry. Fixed at compile time, never inferred from data.
var requiredFields = []requiredField{
	{"company", ruleNonEmpty, func(l *JobListing, v string) { l.Company = v }},
	{"jobTitle", ruleNonEmpty, func(l *JobListing, v string) { l.JobTitle = v }},
	{"location", ruleText, func(l *JobListing, v string) { l.Location = v }},
	{"appStatus", ruleNonEmpty, func(l *JobListing, v string) { l.AppStatus = v }},
	{"url", ruleURL, func(l *JobListing, v string) { l.URL = v }},
	{"notes", ruleText, func(l *JobListing, v string) { l.Notes = v }},
	{"dateSubmitted", ruleTimestamp, func(l *JobListing, v string) { l.DateSubmitted = v }},
	{"dateLastModified", ruleTimestamp, func(l *JobListing, v string) { l.DateLastModified = v }},
}

// requiredSet maps column name to membership for O(1) lookups in the record
// builder.
var requiredSet = func() map[string]bool {
	m := make(map[string]bool, len(requiredFields))
	for _, f := range requiredFields {
		m[f.Name] = true
	}
	return m
}()

// RequiredFieldNames returns the canonical column names in order.
func RequiredFieldNames() []string {
	names := make([]string, len(requiredFields))
	for i, f := range requiredFields {
		names[i] = f.Name
	}
	return names
}

// valid reports whether v satisfies the rule.
func (r fieldRule) valid(v string) bool {
	switch r {
	case ruleNonEmpty:
		return v != ""
	case ruleTimestamp:
		_, err := time.Parse(TimestampLayout, v)
		return err == nil
	case ruleURL:
		if v == "" {
			return true
		}
		u, err := url.Parse(v)
		return err == nil && u.Scheme != "" && u.Host != ""
	default:
		return true
	}
}
