package person

import "offsetpager/internal/pagination"

// Person is a listed directory entry.
type Person struct {
	ID        int64
	Name      string
	Greetings string
	Robot     bool
}

// TableName is the storage table for Person.
func (Person) TableName() string { return "people" }

// Columns in select order, shared by SQL-backed stores.
var Columns = []string{"id", "name", "greetings", "robot"}

// Schema registers the fields clients may filter on.
var Schema = pagination.NewSchema[Person]().
	Int("id", "id", func(p Person) int64 { return p.ID }).
	String("name", "name", func(p Person) string { return p.Name }).
	String("greetings", "greetings", func(p Person) string { return p.Greetings }).
	Bool("robot", "robot", func(p Person) bool { return p.Robot })

// PersonDTO is the public representation of a Person.
type PersonDTO struct {
	Identification int64  `json:"identification"`
	HonestName     string `json:"honest_name"`
	Salute         string `json:"salute"`
	AmRobot        bool   `json:"am_robot"`
}

// ToDTO converts a Person into its public representation.
func ToDTO(p Person) PersonDTO {
	return PersonDTO{
		Identification: p.ID,
		HonestName:     p.Name,
		Salute:         p.Greetings,
		AmRobot:        p.Robot,
	}
}
