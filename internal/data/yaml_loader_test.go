package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/glamourgo/internal/model"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAMLCatalog(t *testing.T) {
	path := writeCatalog(t, `
items:
  - {id: 9001, name: Iron Cap, type: Head, model_id: 77, variant: 2}
  - {id: 3049, name: Renamed Bandana, type: Head, model_id: 1, variant: 1}
human_models: [4, 5]
`)

	c, humans, err := LoadYAMLCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, len(builtinItemDefs)+1, c.Len())

	item, ok := c.Identify(model.SlotHead, 77, 2)
	require.True(t, ok)
	assert.Equal(t, "Iron Cap", item.Name)

	item, ok = c.ByID(3049)
	require.True(t, ok)
	assert.Equal(t, "Renamed Bandana", item.Name)

	assert.True(t, humans.IsHuman(0))
	assert.True(t, humans.IsHuman(4))
	assert.True(t, humans.IsHuman(5))
	assert.False(t, humans.IsHuman(6))
}

func TestLoadYAMLCatalog_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadYAMLCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, _, err := LoadYAMLCatalog(writeCatalog(t, "items: [:::"))
		assert.Error(t, err)
	})

	t.Run("bad type", func(t *testing.T) {
		_, _, err := LoadYAMLCatalog(writeCatalog(t, "items:\n  - {id: 1, name: X, type: Scythe}\n"))
		assert.ErrorIs(t, err, ErrUnknownEquipType)
	})
}

func TestMergeItemDefs(t *testing.T) {
	base := []ItemDef{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	extra := []ItemDef{{ID: 2, Name: "B"}, {ID: 3, Name: "c"}}

	got := MergeItemDefs(base, extra)

	assert.Equal(t, []ItemDef{{ID: 1, Name: "a"}, {ID: 2, Name: "B"}, {ID: 3, Name: "c"}}, got)
	assert.Equal(t, "b", base[1].Name, "base must not be modified")
}
