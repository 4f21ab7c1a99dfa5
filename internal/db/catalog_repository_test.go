//go:build integration

package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/db"
	"github.com/udisondev/glamourgo/internal/design"
	"github.com/udisondev/glamourgo/internal/model"
	"github.com/udisondev/glamourgo/internal/testutil"
)

func TestCatalogRepository_UpsertAndLoadItems(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	defs := []data.ItemDef{
		{ID: 2, Name: "Bronze Gauntlets", Type: "Hands", ModelID: 40, Variant: 4},
		{ID: 1, Name: "Weathered Shortsword", Type: "Sword", ModelID: 201, WeaponType: 1, Variant: 1},
	}
	require.NoError(t, repo.UpsertItems(ctx, defs))

	got, err := repo.LoadItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, defs[1], got[0], "items come back ordered by id")
	assert.Equal(t, defs[0], got[1])

	// Повторный upsert обновляет существующую строку.
	defs[0].Name = "Iron Gauntlets"
	require.NoError(t, repo.UpsertItems(ctx, defs[:1]))
	got, err = repo.LoadItems(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Iron Gauntlets", got[1].Name)
}

func TestCatalogRepository_HumanModels(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	require.NoError(t, repo.UpsertHumanModels(ctx, []uint32{5, 0, 5}))

	ids, err := repo.LoadHumanModels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 5}, ids)
}

func TestCatalogRepository_SeedAndDecode(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	require.NoError(t, repo.Seed(ctx, data.BuiltinItemDefs(), data.LoadBuiltinHumanModels().IDs()))

	cat, humans, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(data.BuiltinItemDefs()), cat.Len())
	assert.True(t, humans.IsHuman(0))

	builtin, err := data.LoadBuiltinCatalog()
	require.NoError(t, err)

	// Дизайн, закодированный со встроенным каталогом, декодируется каталогом из БД.
	d := design.Design{Appearance: model.NewAppearance()}
	d.Appearance.SetItem(model.SlotMainHand, builtin.DefaultSword())
	d.Appearance.SetItem(model.SlotOffHand, model.NothingItem(model.EquipTypeUnknown))
	d.Appearance.SetStain(model.SlotBody, 7)

	got, err := design.NewDecoder(cat, humans, nil).Decode(design.Encode(&d))
	require.NoError(t, err)
	assert.Equal(t, builtin.DefaultSword(), got.Appearance.Item(model.SlotMainHand))
	assert.Equal(t, model.StainID(7), got.Appearance.Stain(model.SlotBody))
}

func TestCatalogRepository_LoadCatalogRejectsBadType(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewCatalogRepository(pool)
	ctx := testutil.ContextWithTimeout(t, time.Minute)

	require.NoError(t, repo.UpsertItems(ctx, []data.ItemDef{
		{ID: 9, Name: "Mystery", Type: "Hat", ModelID: 1, Variant: 1},
	}))

	_, _, err := repo.LoadCatalog(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrUnknownEquipType)
}
