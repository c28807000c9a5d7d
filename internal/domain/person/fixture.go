package person

import "fmt"

// Greetings cycles every ten ids in the generated directory.
var Greetings = []string{
	"Bonjour",
	"Hola",
	"Salve",
	"Guten Tag",
	"Olá",
	"Anyoung haseyo",
	"Goedendag",
	"Yassas",
	"Shalom",
	"God dag",
}

// Fixture returns n people ordered by id starting at 1. Even ids are robots.
func Fixture(n int) []Person {
	people := make([]Person, 0, n)
	for id := 1; id <= n; id++ {
		people = append(people, Person{
			ID:        int64(id),
			Name:      fmt.Sprintf("Person %d", id),
			Greetings: Greetings[(id-1)%len(Greetings)],
			Robot:     id%2 == 0,
		})
	}
	return people
}
