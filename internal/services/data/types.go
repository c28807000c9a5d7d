package data

import (
	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
)

// ListRequest represents a paginated list request
type ListRequest struct {
	// BaseURL is the absolute URL of the listing, without query string.
	BaseURL string
	Params  pagination.Params
}

// PeopleList is one page of people as served to clients.
type PeopleList = pagination.Result[person.PersonDTO]

// Validate normalizes the request so a missing parameter set reads as empty.
func (req *ListRequest) Validate() {
	if req.Params == nil {
		req.Params = pagination.Query{}
	}
}
