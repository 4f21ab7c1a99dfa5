package main

import (
	"context"

	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/db"
)

func runSeedDB(ctx context.Context, a *app, args []string) error {
	if err := expectArgs("seed-db", args, 0); err != nil {
		return err
	}

	database, err := a.openDB(ctx)
	if err != nil {
		return err
	}
	repo := db.NewCatalogRepository(database.Pool())
	return repo.Seed(ctx, data.BuiltinItemDefs(), data.LoadBuiltinHumanModels().IDs())
}
