package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/glamourgo/internal/data"
	"github.com/udisondev/glamourgo/internal/design"
	"github.com/udisondev/glamourgo/internal/model"
	"github.com/udisondev/glamourgo/internal/testutil"
)

func sampleDesignString(t *testing.T, cat *data.Catalog, stain model.StainID) string {
	t.Helper()
	d := design.Design{Appearance: model.NewAppearance()}
	d.Appearance.SetItem(model.SlotMainHand, cat.DefaultSword())
	d.Appearance.SetItem(model.SlotOffHand, cat.DefaultOffhand(cat.DefaultSword()))
	d.Appearance.SetStain(model.SlotBody, stain)
	return design.EncodeToString(&d)
}

func TestMigrateLines(t *testing.T) {
	cat := builtinCatalog(t)
	dec := design.NewDecoder(cat, data.LoadBuiltinHumanModels(), nil)

	first := sampleDesignString(t, cat, 1)
	second := sampleDesignString(t, cat, 2)
	lines := []string{
		first,
		"not base64 at all!",
		second,
		first,
		base64.StdEncoding.EncodeToString([]byte{3, 0, 0}),
		base64.StdEncoding.EncodeToString([]byte{5, 0}),
	}

	results, err := migrateLines(context.Background(), dec, lines, 3)
	require.NoError(t, err)
	require.Len(t, results, len(lines))
	for i, r := range results {
		assert.Equal(t, i+1, r.line)
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	report := writeMigrated(w, results)
	require.NoError(t, w.Flush())

	assert.Equal(t, first+"\n"+second+"\n", buf.String())
	assert.Equal(t, 2, report.Written)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, map[string]int{
		"InvalidBase64":      1,
		"UnsupportedVersion": 1,
		"BadLength":          1,
	}, report.Rejected)
	assert.Equal(t, 3, report.rejectedTotal())
}

func TestMigrateLines_CancelledContext(t *testing.T) {
	cat := builtinCatalog(t)
	dec := design.NewDecoder(cat, data.LoadBuiltinHumanModels(), nil)

	ctx, cancel := testutil.ContextWithCancel(t)
	cancel()

	_, err := migrateLines(ctx, dec, []string{sampleDesignString(t, cat, 1)}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMigrateLines_UpgradesLegacyVersion(t *testing.T) {
	cat := builtinCatalog(t)
	dec := design.NewDecoder(cat, data.LoadBuiltinHumanModels(), nil)

	current, err := base64.StdEncoding.DecodeString(sampleDesignString(t, cat, 4))
	require.NoError(t, err)
	legacy := append([]byte(nil), current[:design.SizeV2]...)
	legacy[design.OffsetVersion] = 2

	results, err := migrateLines(context.Background(), dec, []string{base64.StdEncoding.EncodeToString(legacy)}, 1)
	require.NoError(t, err)
	require.NoError(t, results[0].err)

	raw, err := base64.StdEncoding.DecodeString(results[0].encoded)
	require.NoError(t, err)
	assert.Len(t, raw, design.SizeV4)
	assert.Equal(t, byte(design.CurrentVersion), raw[design.OffsetVersion])
	assert.Equal(t, legacy[1:], raw[1:design.SizeV2])
}

func nonHumanDesignString(modelID uint32, fill byte) string {
	b := testutil.NewBlob(4, design.SizeV4).ModelID(modelID)
	for i := range model.ArmorSlotCount {
		b.Armor(i, uint16(fill)<<8|uint16(fill), fill, fill)
	}
	b.Weapon(0, 0x0102, 0x0304, 0x0506, fill)
	return base64.StdEncoding.EncodeToString(b.Bytes())
}

func TestMigrateLines_NonHumanDesignsKeepEquipment(t *testing.T) {
	cat := builtinCatalog(t)
	dec := design.NewDecoder(cat, data.LoadBuiltinHumanModels(), nil)

	lines := []string{
		nonHumanDesignString(99, 0xAA),
		nonHumanDesignString(99, 0xBB),
		nonHumanDesignString(99, 0xAA),
	}

	results, err := migrateLines(context.Background(), dec, lines, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	report := writeMigrated(w, results)
	require.NoError(t, w.Flush())

	assert.Equal(t, 2, report.Written, "different equipment is not a duplicate")
	assert.Equal(t, 1, report.Duplicates)
	assert.Empty(t, report.Rejected)

	written := strings.Fields(buf.String())
	require.Len(t, written, 2)
	for i, line := range written {
		in, err := base64.StdEncoding.DecodeString(lines[i])
		require.NoError(t, err)
		out, err := base64.StdEncoding.DecodeString(line)
		require.NoError(t, err)

		testutil.AssertBlobVersion(t, design.CurrentVersion, out)
		assert.Equal(t, in[design.OffsetWeapons:design.OffsetMarker], out[design.OffsetWeapons:design.OffsetMarker])
		testutil.AssertUint32LE(t, 99, out, design.OffsetModelID)
	}
}
