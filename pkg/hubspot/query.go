package hubspot

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams models the optional query parameters recognized by CRM read
// endpoints. Serializing through url.Values keeps multi-parameter endpoints
// well-formed regardless of how many options are set.
type QueryParams struct {
	Limit        int
	After        string
	Properties   []string
	Associations []string
	Archived     bool
	IDProperty   string
	Email        string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithLimit sets the page size.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithAfter sets the paging cursor.
func (q *QueryParams) WithAfter(after string) *QueryParams {
	q.After = after

	return q
}

// WithProperties appends property names to return.
func (q *QueryParams) WithProperties(names ...string) *QueryParams {
	q.Properties = append(q.Properties, names...)

	return q
}

// WithAssociations appends object types to expand associations for.
func (q *QueryParams) WithAssociations(types ...string) *QueryParams {
	q.Associations = append(q.Associations, types...)

	return q
}

// WithArchived toggles inclusion of archived records.
func (q *QueryParams) WithArchived(archived bool) *QueryParams {
	q.Archived = archived

	return q
}

// WithIDProperty sets an alternate unique property to look records up by.
func (q *QueryParams) WithIDProperty(name string) *QueryParams {
	q.IDProperty = name

	return q
}

// WithEmail filters owner listings by email address.
func (q *QueryParams) WithEmail(email string) *QueryParams {
	q.Email = email

	return q
}

// ToValues converts the params to url.Values for the HTTP layer.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.After != "" {
		values.Set("after", q.After)
	}

	if len(q.Properties) > 0 {
		values.Set("properties", strings.Join(q.Properties, ","))
	}

	if len(q.Associations) > 0 {
		values.Set("associations", strings.Join(q.Associations, ","))
	}

	if q.Archived {
		values.Set("archived", "true")
	}

	if q.IDProperty != "" {
		values.Set("idProperty", q.IDProperty)
	}

	if q.Email != "" {
		values.Set("email", q.Email)
	}

	return values
}
