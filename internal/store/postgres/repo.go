package postgres

import (
	"context"

	"offsetpager/internal/domain/person"
	"offsetpager/internal/store/repositories"
)

// Repo groups the postgres-backed repositories over one pool.
type Repo struct {
	db DB
}

func NewRepo(db DB) *Repo { return &Repo{db: db} }

func (r *Repo) People() repositories.PersonRepository { return NewPersonSource(r.db) }

// Prepare creates the schema and seeds the reference directory.
func (r *Repo) Prepare(ctx context.Context, seed int) error {
	if err := Migrate(ctx, r.db); err != nil {
		return err
	}
	return SeedPeople(ctx, r.db, person.Fixture(seed))
}
