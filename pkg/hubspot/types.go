package hubspot

import (
	"encoding/json"
	"time"
)

// Object represents a CRM record (deal, contact, company, note, ticket).
// Property shapes are account-specific, so properties stay an opaque map.
type Object struct {
	ID         string            `json:"id"                   yaml:"id"`
	Properties map[string]string `json:"properties"           yaml:"properties"`
	CreatedAt  time.Time         `json:"createdAt"            yaml:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"            yaml:"updatedAt"`
	Archived   bool              `json:"archived"             yaml:"archived"`
	ArchivedAt *time.Time        `json:"archivedAt,omitempty" yaml:"archivedAt,omitempty"`
}

// ObjectType enumerates the CRM object types this client knows how to address.
type ObjectType string

// CRM object types.
const (
	ObjectTypeDeals     ObjectType = "deals"
	ObjectTypeContacts  ObjectType = "contacts"
	ObjectTypeCompanies ObjectType = "companies"
	ObjectTypeNotes     ObjectType = "notes"
	ObjectTypeTickets   ObjectType = "tickets"
)

// ValidObjectType reports whether t is one of the supported CRM object types.
func ValidObjectType(t ObjectType) bool {
	switch t {
	case ObjectTypeDeals, ObjectTypeContacts, ObjectTypeCompanies, ObjectTypeNotes, ObjectTypeTickets:
		return true
	}

	return false
}

// ObjectTypes returns the supported object types in display order.
func ObjectTypes() []ObjectType {
	return []ObjectType{
		ObjectTypeDeals,
		ObjectTypeContacts,
		ObjectTypeCompanies,
		ObjectTypeNotes,
		ObjectTypeTickets,
	}
}

// Paging represents cursor-based pagination info in HubSpot list responses.
type Paging struct {
	Next *NextPage `json:"next,omitempty" yaml:"next,omitempty"`
}

// NextPage holds the cursor and the literal URL for the next page. When Link
// is present the client follows it verbatim rather than reconstructing it.
type NextPage struct {
	After string `json:"after"          yaml:"after"`
	Link  string `json:"link,omitempty" yaml:"link,omitempty"`
}

// CollectionResponse is a paginated list response envelope.
type CollectionResponse[T any] struct {
	Results []T     `json:"results"          yaml:"results"`
	Paging  *Paging `json:"paging,omitempty" yaml:"paging,omitempty"`
}

// ObjectList is a paginated list of CRM objects.
type ObjectList = CollectionResponse[Object]

// Result is the outcome of an executor call that transparently follows
// cursor pagination. HubSpot endpoints return two shapes: a bare object
// (single-record fetch) or a results envelope (lists). The tagged form keeps
// the two apart so callers cannot mistake one for the other.
type Result struct {
	// Object holds the raw response body when no next-page link was present.
	Object json.RawMessage
	// Records holds the concatenated results across pages when at least one
	// next-page link was followed. Order across pages is arrival order.
	Records []json.RawMessage
}

// Paged reports whether the result was assembled from multiple pages.
func (r *Result) Paged() bool {
	return r.Records != nil
}

// DecodeRecords unmarshals each accumulated record into T, preserving order.
func DecodeRecords[T any](r *Result) ([]T, error) {
	out := make([]T, 0, len(r.Records))

	for _, raw := range r.Records {
		var v T

		err := json.Unmarshal(raw, &v)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Owner represents a HubSpot owner (a user who can own CRM records).
type Owner struct {
	ID        string     `json:"id"                   yaml:"id"`
	Email     string     `json:"email"                yaml:"email"`
	FirstName string     `json:"firstName"            yaml:"firstName"`
	LastName  string     `json:"lastName"             yaml:"lastName"`
	UserID    int64      `json:"userId"               yaml:"userId"`
	Archived  bool       `json:"archived"             yaml:"archived"`
	CreatedAt time.Time  `json:"createdAt"            yaml:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"            yaml:"updatedAt"`
	Teams     []JSONBlob `json:"teams,omitempty"      yaml:"teams,omitempty"`
}

// User represents an account user from the settings users API.
type User struct {
	ID        string `json:"id"                  yaml:"id"`
	Email     string `json:"email"               yaml:"email"`
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"  yaml:"lastName,omitempty"`
}

// ResolvedOwner pairs an owner with the account user carrying the same
// internal user id, when one exists.
type ResolvedOwner struct {
	Owner *Owner `json:"owner"          yaml:"owner"`
	User  *User  `json:"user,omitempty" yaml:"user,omitempty"`
}

// Pipeline represents a CRM pipeline and its stages.
type Pipeline struct {
	ID           string          `json:"id"           yaml:"id"`
	Label        string          `json:"label"        yaml:"label"`
	DisplayOrder int             `json:"displayOrder" yaml:"displayOrder"`
	Stages       []PipelineStage `json:"stages"       yaml:"stages"`
	CreatedAt    time.Time       `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"    yaml:"updatedAt"`
	Archived     bool            `json:"archived"     yaml:"archived"`
}

// PipelineStage represents a stage within a pipeline.
type PipelineStage struct {
	ID           string            `json:"id"                 yaml:"id"`
	Label        string            `json:"label"              yaml:"label"`
	DisplayOrder int               `json:"displayOrder"       yaml:"displayOrder"`
	Metadata     map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Archived     bool              `json:"archived"           yaml:"archived"`
}

// Property represents a CRM property definition.
type Property struct {
	Name        string `json:"name"                  yaml:"name"`
	Label       string `json:"label"                 yaml:"label"`
	Type        string `json:"type"                  yaml:"type"`
	FieldType   string `json:"fieldType"             yaml:"fieldType"`
	GroupName   string `json:"groupName,omitempty"   yaml:"groupName,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Archived    bool   `json:"archived"              yaml:"archived"`
}

// AccountDetails is the /account-info/v3/details response, used as the
// connectivity check when establishing a session.
type AccountDetails struct {
	PortalID             int64    `json:"portalId"                       yaml:"portalId"`
	AccountType          string   `json:"accountType"                    yaml:"accountType"`
	TimeZone             string   `json:"timeZone"                       yaml:"timeZone"`
	CompanyCurrency      string   `json:"companyCurrency"                yaml:"companyCurrency"`
	UIDomain             string   `json:"uiDomain"                       yaml:"uiDomain"`
	DataHostingLocation  string   `json:"dataHostingLocation"            yaml:"dataHostingLocation"`
	AdditionalCurrencies []string `json:"additionalCurrencies,omitempty" yaml:"additionalCurrencies,omitempty"`
}

// JSONBlob is an opaque JSON value retained verbatim.
type JSONBlob = json.RawMessage

// ObjectCreateRequest is the body for creating a CRM object.
type ObjectCreateRequest struct {
	Properties map[string]string `json:"properties"`
}

// ObjectUpdateRequest is the body for a partial CRM object update.
type ObjectUpdateRequest struct {
	Properties map[string]string `json:"properties"`
}

// BatchReadRequest is the body for batch-reading CRM objects by id.
type BatchReadRequest struct {
	Inputs     []BatchReadInput `json:"inputs"`
	Properties []string         `json:"properties,omitempty"`
	IDProperty string           `json:"idProperty,omitempty"`
}

// BatchReadInput identifies one object in a batch read.
type BatchReadInput struct {
	ID string `json:"id"`
}

// PropertyCreateRequest is the body for creating a property definition.
type PropertyCreateRequest struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	FieldType   string `json:"fieldType"`
	GroupName   string `json:"groupName,omitempty"`
	Description string `json:"description,omitempty"`
}

// PipelineCreateRequest is the body for creating a pipeline.
type PipelineCreateRequest struct {
	Label        string               `json:"label"`
	DisplayOrder int                  `json:"displayOrder"`
	Stages       []PipelineStageInput `json:"stages"`
}

// PipelineStageInput describes a stage when creating or updating a pipeline.
type PipelineStageInput struct {
	Label        string            `json:"label"`
	DisplayOrder int               `json:"displayOrder"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}
