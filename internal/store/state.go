// Package store owns the mutable game state and exposes the actions that
// compose the simulation packages. A Store is not safe for concurrent use;
// the host drives it from a single goroutine.
package store

import (
	"valley-farm/assets"
	"valley-farm/internal/energy"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/npc"
	"valley-farm/internal/save"
	"valley-farm/internal/shop"
)

// UI is the active modal screen. Only UINone lets the world run.
type UI string

const (
	UINone      UI = "none"
	UIInventory UI = "inventory"
	UIShop      UI = "shop"
	UIDialogue  UI = "dialogue"
	UIMenu      UI = "menu"
	UISleep     UI = "sleep"
)

// StartingGold is the purse of a new farmer.
const StartingGold = 500

// Flags set once by gameplay milestones.
const (
	FlagShopVisited  = "shop_visited"
	FlagFirstHarvest = "first_harvest"
	FlagFirstSale    = "first_sale"
)

// Player is the store-side player. Energy lives in State.Energy.
type Player struct {
	Position       gamemap.Vec
	Velocity       gamemap.Vec
	Direction      gamemap.Direction
	IsMoving       bool
	AnimationFrame float64
	Gold           int
	Name           string
}

// Dialogue is the open conversation box.
type Dialogue struct {
	NPCID string
	Name  string
	Text  string
}

// State is everything the renderer reads and the save snapshot captures.
type State struct {
	Running  bool
	Paused   bool
	Loaded   bool
	ActiveUI UI

	SaveID     string
	PlayerName string
	Player     Player
	Energy     energy.State
	Time       gametime.Time

	Inventory       inventory.Inventory
	HotbarSelection int
	InventoryCursor int
	ShippingBin     []inventory.Slot
	TodayEarnings   int

	FarmTiles farming.Grid
	NPCs      []npc.State
	Dialogue  *Dialogue

	ShopID        string
	ShopItems     []shop.Item
	ShopSelection int

	ToolLevels map[assets.ToolType]assets.ToolLevel
	Statistics save.Statistics
	Flags      map[string]bool

	// Messages is the recent event feed, newest last.
	Messages []string
	// LastDay summarizes the most recent sleep for the sleep screen.
	LastDay DaySummary
	// Quit is set when the player chooses to leave from the menu.
	Quit bool
}

// SelectedSlot returns the hotbar slot under the cursor.
func (s *State) SelectedSlot() inventory.Slot {
	return inventory.At(s.Inventory, s.HotbarSelection)
}

// FacingTile returns the tile in front of the player.
func (s *State) FacingTile() assets.TilePos {
	return gamemap.FacingTile(s.Player.Position.X, s.Player.Position.Y, s.Player.Direction)
}

// DaySummary describes one finished day.
type DaySummary struct {
	Day            int             `json:"day"`
	Season         assets.Season   `json:"season"`
	Year           int             `json:"year"`
	Earnings       int             `json:"earnings"`
	CropsHarvested int             `json:"cropsHarvested"`
	Forced         bool            `json:"forced"`
	EnergyAfter    float64         `json:"energyAfter"`
	NextWeather    assets.Weather  `json:"nextWeather"`
	Gold           int             `json:"gold"`
	Statistics     save.Statistics `json:"statistics"`
}

func defaultToolLevels() map[assets.ToolType]assets.ToolLevel {
	m := make(map[assets.ToolType]assets.ToolLevel, len(assets.ToolTypes))
	for _, t := range assets.ToolTypes {
		m[t] = assets.LevelBasic
	}
	return m
}

func newState(name string) State {
	x, y := gamemap.PlayerStart()
	return State{
		Running:    true,
		Loaded:     true,
		ActiveUI:   UINone,
		SaveID:     save.NewID(),
		PlayerName: name,
		Player: Player{
			Position:  gamemap.Vec{X: x, Y: y},
			Direction: gamemap.Down,
			Gold:      StartingGold,
			Name:      name,
		},
		Energy:      energy.New(),
		Time:        gametime.New(),
		Inventory:   inventory.Starting(),
		ShippingBin: []inventory.Slot{},
		FarmTiles:   farming.NewGrid(assets.FarmWidth, assets.FarmHeight),
		NPCs:        npc.UpdatePositions(npc.InitialStates(), gametime.StartHour),
		ToolLevels:  defaultToolLevels(),
		Flags:       map[string]bool{},
	}
}
