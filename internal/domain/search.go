package domain

import "time"

// Sort order values accepted by search filters.
const (
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// DefaultItemsPerPage is the page size applied when a search request does not
// specify one.
const DefaultItemsPerPage = 25

// BaseSearchFilters holds the pagination, ordering, and creation-date
// predicates shared by every entity search. Nil pointers mean "no predicate".
type BaseSearchFilters struct {
	CreatedDateFrom *time.Time
	CreatedDateTo   *time.Time
	OrderBy         string
	Order           string
	PageIndex       int
	ItemsPerPage    int
}

// SearchResults is the envelope returned by every search operation.
// TotalCount is the number of rows matching the filters before pagination;
// RetrievedCount is len(Items).
type SearchResults[T any] struct {
	TotalCount     int64  `json:"TotalCount"`
	RetrievedCount int    `json:"RetrievedCount"`
	PageIndex      int    `json:"PageIndex"`
	ItemsPerPage   int    `json:"ItemsPerPage"`
	Order          string `json:"Order"`
	OrderedBy      string `json:"OrderedBy"`
	Items          []T    `json:"Items"`
}
