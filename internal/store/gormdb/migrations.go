package gormdb

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"offsetpager/internal/domain/person"
)

// Migrator defines the subset of methods needed for migrations.
type Migrator interface {
	AutoMigrate(dst ...any) error
}

// Models lists every table managed through gorm.
var Models = []any{
	&person.Person{},
}

// Migrate performs auto-migration for all registered models.
func Migrate(m Migrator) error {
	for _, mdl := range Models {
		if err := m.AutoMigrate(mdl); err != nil {
			return fmt.Errorf("auto-migrate %T: %w", mdl, err)
		}
	}
	return nil
}

// SeedPeople inserts people, skipping ids that already exist.
func SeedPeople(db *gorm.DB, people []person.Person) error {
	if len(people) == 0 {
		return nil
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&people).Error; err != nil {
		return fmt.Errorf("seed people: %w", err)
	}
	return nil
}
