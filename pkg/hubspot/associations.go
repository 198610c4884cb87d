package hubspot

// An association is a directed, labeled edge between two CRM objects. The
// API is the source of truth for which association types are valid between
// two object types; this client never validates edges itself.

// AssociationType names a labeled association between two object types, as
// returned by /crm/v3/associations/{from}/{to}/types.
type AssociationType struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// AssociationEndpoint identifies one side of an association edge.
type AssociationEndpoint struct {
	ID string `json:"id"`
}

// AssociationInput is one edge in a batch create or archive request:
// {from:{id}, to:{id}, type}.
type AssociationInput struct {
	From AssociationEndpoint `json:"from"`
	To   AssociationEndpoint `json:"to"`
	Type string              `json:"type"`
}

// AssociationBatchRequest is the body for the batch create and archive
// endpoints. It serializes as {"inputs":[...]} exactly once per call.
type AssociationBatchRequest struct {
	Inputs []AssociationInput `json:"inputs"`
}

// AssociationBatchReadRequest is the body for
// POST /crm/v3/associations/{from}/{to}/batch/read.
type AssociationBatchReadRequest struct {
	Inputs []AssociationEndpoint `json:"inputs"`
}

// AssociationResult is one created or read edge.
type AssociationResult struct {
	From AssociationEndpoint `json:"from" yaml:"from"`
	To   AssociationEndpoint `json:"to"   yaml:"to"`
	Type string              `json:"type" yaml:"type"`
}

// AssociationBatchResponse is the envelope for association batch endpoints.
type AssociationBatchResponse struct {
	Status      string              `json:"status"                yaml:"status"`
	Results     []AssociationResult `json:"results"               yaml:"results"`
	NumErrors   int                 `json:"numErrors,omitempty"   yaml:"numErrors,omitempty"`
	CompletedAt string              `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
}
