package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/maxviazov/report-export-service/internal/paginate"
)

// ErrSchemaMismatch marks datasets whose records do not share one field set or carry non-scalar values.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Record is one row of a report: field name to scalar value.
type Record map[string]any

// Page is a contiguous slice of a Dataset.
type Page []Record

// PageSet is the ordered, exhaustive partition of a Dataset into pages.
type PageSet []Page

// SchemaMismatchError describes the first record that disagrees with the dataset schema.
type SchemaMismatchError struct {
	Index   int
	Missing []string
	Extra   []string
	Reason  string
}

func (e *SchemaMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: record %d", ErrSchemaMismatch.Error(), e.Index)
	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, " missing [%s]", strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		fmt.Fprintf(&b, " unexpected [%s]", strings.Join(e.Extra, ", "))
	}
	if e.Reason != "" {
		b.WriteString(" ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }

// Dataset is an ordered, immutable sequence of records sharing one field set.
type Dataset struct {
	fields  []string
	records []Record
}

// NewDataset validates records against fields and returns a Dataset.
// When fields is empty the schema is taken from the first record's keys in lexical order.
// Every record must have exactly the schema's keys and only scalar values.
func NewDataset(fields []string, records []Record) (Dataset, error) {
	if len(fields) == 0 && len(records) > 0 {
		fields = make([]string, 0, len(records[0]))
		for k := range records[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
	}

	schema := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == "" {
			return Dataset{}, fmt.Errorf("%w: empty field name", ErrSchemaMismatch)
		}
		if _, dup := schema[f]; dup {
			return Dataset{}, fmt.Errorf("%w: duplicate field %q", ErrSchemaMismatch, f)
		}
		schema[f] = struct{}{}
	}

	out := make([]Record, len(records))
	for i, r := range records {
		if err := checkRecord(i, r, fields, schema); err != nil {
			return Dataset{}, err
		}
		out[i] = maps.Clone(r)
	}
	return Dataset{fields: slices.Clone(fields), records: out}, nil
}

func checkRecord(idx int, r Record, fields []string, schema map[string]struct{}) error {
	var missing, extra []string
	for _, f := range fields {
		if _, ok := r[f]; !ok {
			missing = append(missing, f)
		}
	}
	for k := range r {
		if _, ok := schema[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(extra)
		return &SchemaMismatchError{Index: idx, Missing: missing, Extra: extra}
	}
	for _, f := range fields {
		if !IsScalar(r[f]) {
			return &SchemaMismatchError{Index: idx, Reason: fmt.Sprintf("field %q holds non-scalar %T", f, r[f])}
		}
	}
	return nil
}

// IsScalar reports whether v may be stored in a Record.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// Fields returns the dataset schema in column order.
func (d Dataset) Fields() []string { return slices.Clone(d.fields) }

// Records returns copies of the records in dataset order.
func (d Dataset) Records() []Record { return cloneRecords(d.records) }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Paginate splits the dataset into pages of at most pageSize records.
// The pages hold copies, so writes through them never reach the dataset.
func (d Dataset) Paginate(pageSize int) (PageSet, error) {
	pages, err := paginate.Paginate(cloneRecords(d.records), pageSize)
	if err != nil {
		return nil, err
	}
	out := make(PageSet, len(pages))
	for i, p := range pages {
		out[i] = Page(p)
	}
	return out, nil
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = maps.Clone(r)
	}
	return out
}
