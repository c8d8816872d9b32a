package assets

// ShopPierre is the general store run by Pierre.
const ShopPierre = "pierre"

// CatalogEntry is one purchasable line in a shop.
type CatalogEntry struct {
	ItemID string
	Price  int
	Stock  int    // -1 is unlimited
	Season Season // empty means sold all year
}

// Shop is a storefront definition. Seasonal seeds are added at query time.
type Shop struct {
	ID         string
	Name       string
	SellsSeeds bool
	Staples    []CatalogEntry
}

var shops = map[string]Shop{
	ShopPierre: {
		ID:         ShopPierre,
		Name:       "Pierre's General Store",
		SellsSeeds: true,
		Staples: []CatalogEntry{
			{ItemID: ItemBasicFertilizer, Price: 100, Stock: -1},
			{ItemID: ItemBread, Price: 120, Stock: -1},
			{ItemID: ItemSalad, Price: 220, Stock: -1},
		},
	},
}

// ShopByID looks up a storefront.
func ShopByID(id string) (Shop, bool) {
	s, ok := shops[id]
	return s, ok
}

// BackpackTier is a purchasable inventory size.
type BackpackTier struct {
	From, To int
	Price    int
}

// BackpackTiers lists the backpack upgrades in order.
var BackpackTiers = []BackpackTier{
	{From: 12, To: 24, Price: 2000},
	{From: 24, To: 36, Price: 10000},
}
