package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"offsetpager/internal/domain/person"
)

const createPeople = `
CREATE TABLE IF NOT EXISTS people (
	id        BIGINT PRIMARY KEY,
	name      TEXT NOT NULL,
	greetings TEXT NOT NULL,
	robot     BOOLEAN NOT NULL DEFAULT FALSE
)`

// PeopleTable maps person.Person onto the people table, ordered by id.
var PeopleTable = Table[person.Person]{
	Name:    "people",
	Columns: person.Columns,
	OrderBy: "id ASC",
	Scan:    scanPerson,
}

func NewPersonSource(db DB) *TableSource[person.Person] {
	return NewTableSource(db, person.Schema, PeopleTable)
}

func scanPerson(row pgx.Row) (person.Person, error) {
	var p person.Person
	err := row.Scan(&p.ID, &p.Name, &p.Greetings, &p.Robot)
	return p, err
}

// Migrate creates the people table when missing.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, createPeople); err != nil {
		return fmt.Errorf("create people: %w", err)
	}
	return nil
}

// SeedPeople inserts people in one transaction, leaving existing ids untouched.
func SeedPeople(ctx context.Context, db DB, people []person.Person) error {
	if len(people) == 0 {
		return nil
	}
	insert := newQueryBuilder().Insert("people").Columns(person.Columns...)
	for _, p := range people {
		insert = insert.Values(p.ID, p.Name, p.Greetings, p.Robot)
	}
	sql, args, err := insert.Suffix("ON CONFLICT (id) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("build seed: %w", err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("seed people: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
