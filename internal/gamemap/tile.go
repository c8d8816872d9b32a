package gamemap

// Kind identifies the base terrain of a map cell. The numeric order matches
// the tile ids of the farm tileset.
type Kind uint8

const (
	Grass Kind = iota
	Dirt
	Water
	Sand
	WoodFloor
	StoneFloor
	Fence
	Tree
	Rock
	Bush
	House
	Bed
	ShippingBin
	ShopCounter
	kindCount
)

var kindNames = [kindCount]string{
	"grass", "dirt", "water", "sand", "wood_floor", "stone_floor", "fence",
	"tree", "rock", "bush", "house", "bed", "shipping_bin", "shop_counter",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Tile holds the kind and movement flags for one map cell.
type Tile struct {
	Kind         Kind
	Walkable     bool
	Interactable bool
}

// Make returns the tile for kind with its walk and interact flags set.
func Make(k Kind) Tile {
	t := Tile{Kind: k, Walkable: true}
	switch k {
	case Water, Fence, Tree, Rock, Bush:
		t.Walkable = false
	case House, ShippingBin, ShopCounter:
		t.Walkable = false
		t.Interactable = true
	case Bed:
		t.Interactable = true
	}
	return t
}

// Tillable reports whether a hoe can break ground on this kind.
func (k Kind) Tillable() bool { return k == Grass || k == Dirt }
