package main

import (
	"context"
	"fmt"
	"io"

	"github.com/udisondev/glamourgo/internal/config"
	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/db"
	"github.com/udisondev/glamourgo/internal/design"
)

// app: shared state of one glamourctl invocation.
type app struct {
	cfg config.Glamour
	in  io.Reader
	out io.Writer

	database *db.DB
	items    *data.Catalog
	humans   *data.HumanModelList
}

func newApp(cfg config.Glamour, in io.Reader, out io.Writer) *app {
	return &app{cfg: cfg, in: in, out: out}
}

// Close releases the database connection, if one was opened.
func (a *app) Close() {
	if a.database != nil {
		a.database.Close()
		a.database = nil
	}
}

// openDB opens the PostgreSQL connection and applies migrations on first use.
func (a *app) openDB(ctx context.Context) (*db.DB, error) {
	if a.database != nil {
		return a.database, nil
	}

	dsn := a.cfg.Database.DSN()
	if err := db.RunMigrations(ctx, dsn); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	a.database = database
	return database, nil
}

// catalog loads the item catalog from the configured source on first use.
func (a *app) catalog(ctx context.Context) (*data.Catalog, *data.HumanModelList, error) {
	if a.items != nil {
		return a.items, a.humans, nil
	}

	var (
		items  *data.Catalog
		humans *data.HumanModelList
		err    error
	)
	switch a.cfg.Catalog.Source {
	case config.CatalogYAML:
		items, humans, err = data.LoadYAMLCatalog(a.cfg.Catalog.Path)
	case config.CatalogPostgres:
		var database *db.DB
		if database, err = a.openDB(ctx); err != nil {
			return nil, nil, err
		}
		items, humans, err = db.NewCatalogRepository(database.Pool()).LoadCatalog(ctx)
	default:
		if items, err = data.LoadBuiltinCatalog(); err == nil {
			humans = data.LoadBuiltinHumanModels()
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s catalog: %w", a.cfg.Catalog.Source, err)
	}

	a.items, a.humans = items, humans
	return items, humans, nil
}

func (a *app) decoder(ctx context.Context) (*design.Decoder, *data.Catalog, error) {
	items, humans, err := a.catalog(ctx)
	if err != nil {
		return nil, nil, err
	}
	return design.NewDecoder(items, humans, nil), items, nil
}
