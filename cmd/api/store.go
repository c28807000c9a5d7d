package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"offsetpager/internal/config"
	"offsetpager/internal/domain/person"
	"offsetpager/internal/pagination"
	"offsetpager/internal/store/gormdb"
	"offsetpager/internal/store/postgres"
	"offsetpager/internal/store/repositories"
)

func openMemory(cfg config.Cfg) repositories.PersonRepository {
	log.Info().Int("people", cfg.DB.Seed).Msg("serving in-memory directory")
	return pagination.NewMemorySource(person.Schema, person.Fixture(cfg.DB.Seed))
}

func openPostgres(ctx context.Context, cfg config.Cfg) (repositories.PersonRepository, func()) {
	pool := postgres.MustOpen(ctx, cfg.DB.DSN, cfg.DB.ConnectTimeout)
	repo := postgres.NewRepo(pool)
	if err := repo.Prepare(ctx, cfg.DB.Seed); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("prepare postgres schema")
	}
	return repo.People(), pool.Close
}

func openMySQL(ctx context.Context, cfg config.Cfg) (repositories.PersonRepository, func()) {
	db, err := gormdb.Open(ctx, cfg.DB.DSN, cfg.DB.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect fail")
	}
	if err := gormdb.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}
	if err := gormdb.SeedPeople(db.WithContext(ctx), person.Fixture(cfg.DB.Seed)); err != nil {
		log.Fatal().Err(err).Msg("seed people")
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return gormdb.NewPersonSource(db), closeDB
}
