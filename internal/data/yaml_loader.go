package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogFile: YAML catalog overlay.
//
//	items:
//	  - {id: 1602, name: Bronze Gladius, type: Sword, model_id: 201, weapon_type: 2, variant: 1}
//	human_models: [0, 1]
type CatalogFile struct {
	Items       []ItemDef `yaml:"items"`
	HumanModels []uint32  `yaml:"human_models"`
}

// ReadCatalogFile parses a YAML catalog file.
func ReadCatalogFile(path string) (CatalogFile, error) {
	var f CatalogFile

	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return f, nil
}

// MergeItemDefs overlays extra on top of base: entries with the same id replace base ones.
func MergeItemDefs(base, extra []ItemDef) []ItemDef {
	idx := make(map[uint32]int, len(base))
	out := make([]ItemDef, 0, len(base)+len(extra))
	for _, def := range base {
		idx[def.ID] = len(out)
		out = append(out, def)
	}
	for _, def := range extra {
		if i, ok := idx[def.ID]; ok {
			out[i] = def
			continue
		}
		idx[def.ID] = len(out)
		out = append(out, def)
	}
	return out
}

// LoadYAMLCatalog builds the catalog and human model list from the built-in
// tables overlaid with a YAML file.
func LoadYAMLCatalog(path string) (*Catalog, *HumanModelList, error) {
	f, err := ReadCatalogFile(path)
	if err != nil {
		return nil, nil, err
	}

	c, err := NewCatalog(MergeItemDefs(builtinItemDefs, f.Items))
	if err != nil {
		return nil, nil, fmt.Errorf("building catalog from %s: %w", path, err)
	}
	humans := NewHumanModelList(append(append([]uint32(nil), builtinHumanModels...), f.HumanModels...))

	slog.Info("loaded item catalog", "source", "yaml", "path", path, "count", c.Len(), "human_models", humans.Len())
	return c, humans, nil
}
