package types

import (
	"fmt"
	"strings"
)

// Page is one raw JSON response body from the Alasco API.
type Page map[string]interface{}

// Filter is the triple serialized as ?filter[attribute.operation]=v1,v2,...
// A scalar filter is a Filter with a single value.
type Filter struct {
	Attribute string
	Operation string
	Values    []string
}

func NewFilter(attribute, operation string, values ...string) *Filter {
	return &Filter{Attribute: attribute, Operation: operation, Values: values}
}

// Apply appends the filter query parameter to the given URL.
// The value list is comma-joined, matching the upstream wire format.
func (f *Filter) Apply(url string) string {
	return fmt.Sprintf("%s?filter[%s.%s]=%s", url, f.Attribute, f.Operation, strings.Join(f.Values, ","))
}

// NextLink returns the pagination link of the page, or "" when the page is the
// last one. A null "next" field counts as the last page.
func (p Page) NextLink() string {
	links, ok := p["links"].(map[string]interface{})
	if !ok {
		return ""
	}
	next, ok := links["next"].(string)
	if !ok {
		return ""
	}
	return next
}

// FetchError is a transport or HTTP level failure. It is fatal to the
// aggregate fetch and is never retried.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SchemaError reports a missing required element: the "data" key of a raw
// page, a table missing from the consolidation input, or a required column.
type SchemaError struct {
	Missing string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required element: %s", e.Missing)
}
