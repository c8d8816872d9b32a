// Package inventory implements the fixed-capacity slot backpack. Every
// operation returns a new slice; a failed operation returns its input.
package inventory

import (
	"sort"

	"valley-farm/assets"
)

const (
	SmallSize  = 12
	MediumSize = 24
	LargeSize  = 36
	HotbarSize = 12
)

// Slot is one backpack cell. An empty slot has ItemID "" and Quantity 0.
type Slot struct {
	ItemID   string         `json:"itemId" validate:"omitempty,itemid"`
	Quantity int            `json:"quantity" validate:"gte=0"`
	Quality  assets.Quality `json:"quality,omitempty" validate:"omitempty,oneof=normal silver gold iridium"`
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool { return s.ItemID == "" }

// Inventory is an ordered list of slots. The first HotbarSize slots form
// the hotbar.
type Inventory []Slot

// Result reports whether an operation applied and the resulting inventory.
type Result struct {
	Success   bool
	Inventory Inventory
}

// AddResult extends Result with the quantity that did not fit.
type AddResult struct {
	Success   bool
	Inventory Inventory
	Remaining int
}

// New returns size empty slots.
func New(size int) Inventory {
	return make(Inventory, size)
}

// Starting returns the new-game backpack: one of each tool and a packet of
// parsnip seeds.
func Starting() Inventory {
	inv := New(SmallSize)
	for i, t := range assets.ToolTypes {
		inv[i] = Slot{ItemID: assets.ToolItemID(t), Quantity: 1}
	}
	inv[len(assets.ToolTypes)] = Slot{ItemID: "parsnip_seeds", Quantity: 15}
	return inv
}

func (inv Inventory) clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

func (inv Inventory) valid(i int) bool { return i >= 0 && i < len(inv) }

// Add tops up matching stacks, then fills empty slots. Tools never stack.
// Success means at least one unit went in; Remaining is what did not fit.
func Add(inv Inventory, itemID string, qty int, q assets.Quality) AddResult {
	if itemID == "" || qty <= 0 {
		return AddResult{Inventory: inv, Remaining: qty}
	}
	out := inv.clone()
	remaining := qty
	limit := assets.MaxStack(itemID)
	stacks := limit > 1 && !assets.IsTool(itemID)

	if stacks {
		for i := range out {
			if remaining == 0 {
				break
			}
			s := out[i]
			if s.ItemID != itemID || s.Quality != q || s.Quantity >= limit {
				continue
			}
			n := min(limit-s.Quantity, remaining)
			out[i].Quantity += n
			remaining -= n
		}
	}
	for i := range out {
		if remaining == 0 {
			break
		}
		if !out[i].Empty() {
			continue
		}
		n := 1
		if stacks {
			n = min(limit, remaining)
		}
		out[i] = Slot{ItemID: itemID, Quantity: n, Quality: q}
		remaining -= n
	}

	if remaining == qty {
		return AddResult{Inventory: inv, Remaining: qty}
	}
	return AddResult{Success: true, Inventory: out, Remaining: remaining}
}

// Remove takes qty from one slot. Taking more than the slot holds fails.
func Remove(inv Inventory, slot, qty int) Result {
	if !inv.valid(slot) || qty <= 0 || inv[slot].Empty() || inv[slot].Quantity < qty {
		return Result{Inventory: inv}
	}
	out := inv.clone()
	out[slot].Quantity -= qty
	if out[slot].Quantity == 0 {
		out[slot] = Slot{}
	}
	return Result{Success: true, Inventory: out}
}

// RemoveByID takes qty of itemID across any stacks, first slot first. It
// fails without change when the backpack holds fewer than qty.
func RemoveByID(inv Inventory, itemID string, qty int) Result {
	if qty <= 0 || Count(inv, itemID) < qty {
		return Result{Inventory: inv}
	}
	out := inv.clone()
	for i := range out {
		if qty == 0 {
			break
		}
		if out[i].ItemID != itemID {
			continue
		}
		n := min(out[i].Quantity, qty)
		out[i].Quantity -= n
		qty -= n
		if out[i].Quantity == 0 {
			out[i] = Slot{}
		}
	}
	return Result{Success: true, Inventory: out}
}

// Use consumes one unit from slot.
func Use(inv Inventory, slot int) Result { return Remove(inv, slot, 1) }

// Count totals itemID across all stacks and qualities.
func Count(inv Inventory, itemID string) int {
	n := 0
	for _, s := range inv {
		if s.ItemID == itemID {
			n += s.Quantity
		}
	}
	return n
}

// Has reports whether at least qty of itemID is held.
func Has(inv Inventory, itemID string, qty int) bool { return Count(inv, itemID) >= qty }

// Swap exchanges two slots.
func Swap(inv Inventory, a, b int) Result {
	if !inv.valid(a) || !inv.valid(b) || a == b {
		return Result{Inventory: inv}
	}
	out := inv.clone()
	out[a], out[b] = out[b], out[a]
	return Result{Success: true, Inventory: out}
}

// Upgrade grows the backpack to size, keeping slot order. Shrinking fails.
func Upgrade(inv Inventory, size int) Result {
	if size <= len(inv) {
		return Result{Inventory: inv}
	}
	out := New(size)
	copy(out, inv)
	return Result{Success: true, Inventory: out}
}

// Sort orders stacks by category priority, then id. Empty slots go last.
func Sort(inv Inventory) Inventory {
	out := inv.clone()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Empty() || b.Empty() {
			return !a.Empty() && b.Empty()
		}
		pa, pb := category(a.ItemID).SortPriority(), category(b.ItemID).SortPriority()
		if pa != pb {
			return pa < pb
		}
		return a.ItemID < b.ItemID
	})
	return out
}

func category(id string) assets.Category {
	it, ok := assets.ItemByID(id)
	if !ok {
		return ""
	}
	return it.Category
}

// CountEmpty returns the number of free slots.
func CountEmpty(inv Inventory) int {
	n := 0
	for _, s := range inv {
		if s.Empty() {
			n++
		}
	}
	return n
}

// IsFull reports whether no slot is free.
func IsFull(inv Inventory) bool { return CountEmpty(inv) == 0 }

// CycleHotbar moves the selection by delta, wrapping around the hotbar.
func CycleHotbar(selected, delta int) int {
	return ((selected+delta)%HotbarSize + HotbarSize) % HotbarSize
}

// At returns the slot at i, or an empty slot when i is out of range.
func At(inv Inventory, i int) Slot {
	if !inv.valid(i) {
		return Slot{}
	}
	return inv[i]
}
