package design

import "github.com/udisondev/glamourgo/internal/model"

// SetMainhand equips item in the mainhand. When the new weapon needs a
// different offhand category than the old one, the offhand is replaced with
// the default offhand for item. Returns true if the offhand changed.
func SetMainhand(a *model.Appearance, offhands OffhandSource, item model.Item) bool {
	old := a.Item(model.SlotMainHand)
	a.SetItem(model.SlotMainHand, item)
	if old.Type.ValidOffhand() == item.Type.ValidOffhand() {
		return false
	}
	a.SetItem(model.SlotOffHand, offhands.DefaultOffhand(item))
	return true
}
