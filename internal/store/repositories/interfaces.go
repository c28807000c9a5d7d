package repositories

import (
	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
)

// PersonRepository defines the read contract of the people listing
type PersonRepository interface {
	pagination.Source[person.Person]
}
