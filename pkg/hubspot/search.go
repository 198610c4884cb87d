package hubspot

// SearchRequest is the body of a CRM search call. SearchAll takes a defensive
// copy before paging, so the caller's request is never mutated and never
// gains an After cursor.
type SearchRequest struct {
	Query        string        `json:"query,omitempty"`
	FilterGroups []FilterGroup `json:"filterGroups,omitempty"`
	Sorts        []Sort        `json:"sorts,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	After        string        `json:"after,omitempty"`
}

// Clone returns a shallow-enough copy safe for cursor rewriting: the slices
// are shared (the paginator never edits them), the scalar fields are not.
func (r *SearchRequest) Clone() *SearchRequest {
	if r == nil {
		return &SearchRequest{}
	}

	clone := *r

	return &clone
}

// FilterGroup is a group of filters combined with AND. Groups themselves
// combine with OR.
type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

// Filter is a single property predicate.
type Filter struct {
	PropertyName string   `json:"propertyName"`
	Operator     string   `json:"operator"`
	Value        string   `json:"value,omitempty"`
	HighValue    string   `json:"highValue,omitempty"`
	Values       []string `json:"values,omitempty"`
}

// Sort specifies an ordering for search results.
type Sort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

// SearchResult is the response envelope from a CRM search. Total is the
// declared match count across all pages, not the size of this page.
type SearchResult struct {
	Total   int           `json:"total"            yaml:"total"`
	Results []Object      `json:"results"          yaml:"results"`
	Paging  *SearchPaging `json:"paging,omitempty" yaml:"paging,omitempty"`
}

// SearchPaging holds the offset cursor for the next page of search results.
type SearchPaging struct {
	Next SearchPagingNext `json:"next" yaml:"next"`
}

// SearchPagingNext holds the offset cursor itself.
type SearchPagingNext struct {
	After string `json:"after" yaml:"after"`
}
