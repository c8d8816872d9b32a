// Package save persists game snapshots as JSON documents behind a
// swappable storage backend.
package save

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"valley-farm/assets"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/npc"
)

// Version is stamped on every snapshot. Older snapshots are migrated on
// load.
const Version = "1.0.0"

// Player is the serialized player.
type Player struct {
	Position       gamemap.Vec       `json:"position"`
	Velocity       gamemap.Vec       `json:"velocity"`
	Direction      gamemap.Direction `json:"direction" validate:"oneof=up down left right"`
	IsMoving       bool              `json:"isMoving"`
	AnimationFrame float64           `json:"animationFrame" validate:"gte=0,lt=4"`
	Energy         float64           `json:"energy" validate:"gte=-15,ltefield=MaxEnergy"`
	MaxEnergy      float64           `json:"maxEnergy" validate:"gt=0,lte=508"`
	Gold           int               `json:"gold" validate:"gte=0"`
	Name           string            `json:"name"`
}

// Statistics are lifetime counters.
type Statistics struct {
	TotalEarnings  int `json:"totalEarnings" validate:"gte=0"`
	CropsHarvested int `json:"cropsHarvested" validate:"gte=0"`
	DaysFarmed     int `json:"daysFarmed" validate:"gte=0"`
	StepsWalked    int `json:"stepsWalked" validate:"gte=0"`
}

// Data is one complete snapshot.
type Data struct {
	ID              string                               `json:"id" validate:"required,uuid"`
	Version         string                               `json:"version" validate:"required"`
	SavedAt         time.Time                            `json:"savedAt"`
	PlayerName      string                               `json:"playerName" validate:"required,max=32"`
	Player          Player                               `json:"player"`
	Time            gametime.Time                        `json:"time"`
	Inventory       inventory.Inventory                  `json:"inventory" validate:"min=12,max=36,dive"`
	HotbarSelection int                                  `json:"hotbarSelection" validate:"gte=0,lt=12"`
	FarmTiles       farming.Grid                         `json:"farmTiles" validate:"required,dive,dive"`
	ShippingBin     []inventory.Slot                     `json:"shippingBin" validate:"dive"`
	NPCs            []npc.State                          `json:"npcs" validate:"dive"`
	Flags           map[string]bool                      `json:"flags"`
	Statistics      Statistics                           `json:"statistics"`
	ToolLevels      map[assets.ToolType]assets.ToolLevel `json:"toolLevels"`
}

// NewID returns a fresh snapshot id.
func NewID() string { return uuid.NewString() }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("itemid", validateItemID)
	return v
}

func validateItemID(fl validator.FieldLevel) bool {
	_, ok := assets.ItemByID(fl.Field().String())
	return ok
}

// Validate checks field ranges, item ids and the farm size.
func Validate(d *Data) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("validate save: %w", err)
	}
	if len(d.FarmTiles) != assets.FarmHeight {
		return fmt.Errorf("validate save: farm has %d rows, want %d", len(d.FarmTiles), assets.FarmHeight)
	}
	for y, row := range d.FarmTiles {
		if len(row) != assets.FarmWidth {
			return fmt.Errorf("validate save: farm row %d has %d tiles, want %d", y, len(row), assets.FarmWidth)
		}
	}
	return nil
}

// Migrate fills fields introduced after d was written and stamps the
// current version. It never discards data.
func Migrate(d *Data) {
	if d.ID == "" {
		d.ID = NewID()
	}
	if d.PlayerName == "" {
		d.PlayerName = d.Player.Name
	}
	if d.PlayerName == "" {
		d.PlayerName = "Farmer"
	}
	if d.Flags == nil {
		d.Flags = map[string]bool{}
	}
	if d.ShippingBin == nil {
		d.ShippingBin = []inventory.Slot{}
	}
	if d.ToolLevels == nil {
		d.ToolLevels = map[assets.ToolType]assets.ToolLevel{}
	}
	for _, t := range assets.ToolTypes {
		if _, ok := d.ToolLevels[t]; !ok {
			d.ToolLevels[t] = assets.LevelBasic
		}
	}
	if d.NPCs == nil {
		d.NPCs = npc.InitialStates()
	}
	if d.Player.Direction == "" {
		d.Player.Direction = gamemap.Down
	}
	if d.Player.MaxEnergy == 0 {
		d.Player.MaxEnergy = d.Player.Energy
	}
	d.Version = Version
}
