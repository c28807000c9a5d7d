package data

import (
	"context"

	"github.com/rs/zerolog/log"

	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
	"offsetpager/internal/store/repositories"
)

// Service handles data retrieval operations
type Service struct {
	pager  *pagination.Paginator
	people repositories.PersonRepository
}

// NewService creates a new data service
func NewService(pager *pagination.Paginator, people repositories.PersonRepository) *Service {
	return &Service{
		pager:  pager,
		people: people,
	}
}

// ListPeople returns one page of people in their public representation.
// Unknown query parameters act as equality filters.
func (s *Service) ListPeople(ctx context.Context, req ListRequest) (*PeopleList, error) {
	req.Validate()

	res, err := pagination.PaginateMap(ctx, s.pager, s.people, req.BaseURL, req.Params, person.ToDTO)
	if err != nil {
		log.Warn().Err(err).Str("op", "list_people").Msg("listing failed")
		return nil, &ServiceError{Op: "list_people", Err: err}
	}

	pageSize.WithLabelValues("people").Observe(float64(len(res.Results)))
	return res, nil
}

// ServiceError represents a data service error
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return "data service " + e.Op + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
