package data

import "log/slog"

// HumanModelList: set of body model ids that wear regular equipment.
type HumanModelList struct {
	ids map[uint32]struct{}
}

// NewHumanModelList creates a list from model ids. Model 0 (default human)
// is always included.
func NewHumanModelList(ids []uint32) *HumanModelList {
	l := &HumanModelList{ids: make(map[uint32]struct{}, len(ids)+1)}
	l.ids[0] = struct{}{}
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
	return l
}

// LoadBuiltinHumanModels returns the built-in human model list.
func LoadBuiltinHumanModels() *HumanModelList {
	l := NewHumanModelList(builtinHumanModels)
	slog.Info("loaded human models", "source", "builtin", "count", l.Len())
	return l
}

// IsHuman reports whether modelID is a human body.
func (l *HumanModelList) IsHuman(modelID uint32) bool {
	_, ok := l.ids[modelID]
	return ok
}

// Len returns the number of human model ids.
func (l *HumanModelList) Len() int {
	return len(l.ids)
}

// IDs returns the model ids (unordered).
func (l *HumanModelList) IDs() []uint32 {
	out := make([]uint32, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	return out
}
