package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/glamourgo/internal/data"
)

// CatalogRepository хранит каталог предметов и список человеческих моделей.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository создаёт новый CatalogRepository.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// LoadItems загружает все определения предметов, отсортированные по id.
func (r *CatalogRepository) LoadItems(ctx context.Context) ([]data.ItemDef, error) {
	query := `
		SELECT item_id, name, equip_type, model_id, weapon_type, variant
		FROM items
		ORDER BY item_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	defs := make([]data.ItemDef, 0, 256)
	for rows.Next() {
		var (
			id         int64
			def        data.ItemDef
			modelID    int32
			weaponType int32
			variant    int16
		)
		if err := rows.Scan(&id, &def.Name, &def.Type, &modelID, &weaponType, &variant); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		def.ID = uint32(id)
		def.ModelID = uint16(modelID)
		def.WeaponType = uint16(weaponType)
		def.Variant = uint8(variant)
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item rows: %w", err)
	}

	return defs, nil
}

// UpsertItems вставляет или обновляет определения предметов в одной транзакции.
func (r *CatalogRepository) UpsertItems(ctx context.Context, defs []data.ItemDef) error {
	if len(defs) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, d := range defs {
		batch.Queue(
			`INSERT INTO items (item_id, name, equip_type, model_id, weapon_type, variant)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 ON CONFLICT (item_id) DO UPDATE SET
			  name=$2, equip_type=$3, model_id=$4, weapon_type=$5, variant=$6`,
			int64(d.ID), d.Name, d.Type, int32(d.ModelID), int32(d.WeaponType), int16(d.Variant),
		)
	}
	br := tx.SendBatch(ctx, batch)
	for _, d := range defs {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("upserting item %d: %w", d.ID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close item batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit items: %w", err)
	}
	return nil
}

// LoadHumanModels загружает id моделей, которые носят экипировку.
func (r *CatalogRepository) LoadHumanModels(ctx context.Context) ([]uint32, error) {
	rows, err := r.db.Query(ctx, `SELECT model_id FROM human_models ORDER BY model_id`)
	if err != nil {
		return nil, fmt.Errorf("querying human models: %w", err)
	}
	defer rows.Close()

	var ids []uint32
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning human model row: %w", err)
		}
		ids = append(ids, uint32(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating human model rows: %w", err)
	}
	return ids, nil
}

// UpsertHumanModels добавляет id моделей; существующие не трогаются.
func (r *CatalogRepository) UpsertHumanModels(ctx context.Context, ids []uint32) error {
	if len(ids) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(`INSERT INTO human_models (model_id) VALUES ($1) ON CONFLICT DO NOTHING`, int64(id))
	}
	br := r.db.SendBatch(ctx, batch)
	for _, id := range ids {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("inserting human model %d: %w", id, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close human model batch: %w", err)
	}
	return nil
}

// LoadCatalog собирает каталог и список моделей из БД.
func (r *CatalogRepository) LoadCatalog(ctx context.Context) (*data.Catalog, *data.HumanModelList, error) {
	defs, err := r.LoadItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	cat, err := data.NewCatalog(defs)
	if err != nil {
		return nil, nil, fmt.Errorf("building catalog from database: %w", err)
	}

	ids, err := r.LoadHumanModels(ctx)
	if err != nil {
		return nil, nil, err
	}
	humans := data.NewHumanModelList(ids)

	slog.Info("loaded item catalog from database", "items", cat.Len(), "human_models", humans.Len())
	return cat, humans, nil
}

// Seed записывает встроенный каталог: предметы и человеческие модели.
func (r *CatalogRepository) Seed(ctx context.Context, defs []data.ItemDef, humanModels []uint32) error {
	if err := r.UpsertItems(ctx, defs); err != nil {
		return err
	}
	if err := r.UpsertHumanModels(ctx, humanModels); err != nil {
		return err
	}
	slog.Info("seeded item catalog", "items", len(defs), "human_models", len(humanModels))
	return nil
}
