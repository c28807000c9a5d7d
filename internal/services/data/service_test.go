package data_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
	"offsetpager/internal/services/data"
	"offsetpager/internal/store/repositories"
)

func newService(t *testing.T, people repositories.PersonRepository) *data.Service {
	t.Helper()
	pager, err := pagination.New(pagination.Config{DefaultPageSize: 10, MaxPageSize: 25})
	require.NoError(t, err)
	return data.NewService(pager, people)
}

type failingSource struct {
	err error
}

func (f failingSource) Schema() *pagination.Schema[person.Person] { return person.Schema }

func (f failingSource) Count(context.Context, pagination.Conjunction) (int, error) {
	return 0, f.err
}

func (f failingSource) Slice(context.Context, pagination.Conjunction, pagination.PageRequest) ([]person.Person, error) {
	return nil, f.err
}

func TestListPeople(t *testing.T) {
	svc := newService(t, pagination.NewMemorySource(person.Schema, person.Fixture(50)))

	t.Run("first page", func(t *testing.T) {
		res, err := svc.ListPeople(context.Background(), data.ListRequest{BaseURL: "http://api.test/people"})
		require.NoError(t, err)

		assert.Equal(t, 50, res.Count)
		assert.Nil(t, res.Previous)
		require.NotNil(t, res.Next)
		assert.Equal(t, "http://api.test/people/?limit=10&offset=10", *res.Next)
		require.Len(t, res.Results, 10)
		assert.Equal(t, person.PersonDTO{
			Identification: 1,
			HonestName:     "Person 1",
			Salute:         "Bonjour",
			AmRobot:        false,
		}, res.Results[0])
	})

	t.Run("filtered page", func(t *testing.T) {
		res, err := svc.ListPeople(context.Background(), data.ListRequest{
			BaseURL: "http://api.test/people",
			Params:  pagination.ParseQuery("salute=Hola&greetings=Hola&limit=2"),
		})
		require.NoError(t, err)

		assert.Equal(t, 5, res.Count)
		require.NotNil(t, res.Next)
		assert.Equal(t, "http://api.test/people/?greetings=Hola&limit=2&offset=2", *res.Next)
		assert.Equal(t, []int64{2, 12}, []int64{res.Results[0].Identification, res.Results[1].Identification})
	})
}

func TestListPeople_Errors(t *testing.T) {
	t.Run("source failure is wrapped", func(t *testing.T) {
		svc := newService(t, failingSource{err: assert.AnError})

		_, err := svc.ListPeople(context.Background(), data.ListRequest{})
		var serr *data.ServiceError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "list_people", serr.Op)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("cancellation stays detectable", func(t *testing.T) {
		svc := newService(t, pagination.NewMemorySource(person.Schema, person.Fixture(5)))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.ListPeople(ctx, data.ListRequest{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
