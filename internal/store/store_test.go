package store

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valley-farm/assets"
	"valley-farm/internal/energy"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/save"
)

const step = 1.0 / 60

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(Deps{
		Rand:   rand.New(rand.NewSource(7)),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Saves:  save.NewManager(save.NewMemoryBackend(), slog.New(slog.NewTextHandler(io.Discard, nil))),
	})
	s.StartGame("Tester")
	return s
}

// placeAt stands the player in the middle of tile (x, y) facing d.
func placeAt(s *Store, x, y int, d gamemap.Direction) {
	s.st.Player.Position = gamemap.Vec{
		X: float64(x*assets.TileSize + assets.TileSize/2),
		Y: float64(y*assets.TileSize + assets.TileSize/2),
	}
	s.st.Player.Velocity = gamemap.Vec{}
	s.st.Player.Direction = d
}

func selectItem(s *Store, itemID string) int {
	for i, slot := range s.st.Inventory[:inventory.HotbarSize] {
		if slot.ItemID == itemID {
			s.SetHotbarSelection(i)
			return i
		}
	}
	return -1
}

func giveAndSelect(t *testing.T, s *Store, itemID string, qty int) {
	t.Helper()
	require.True(t, s.AddItem(itemID, qty, ""))
	require.GreaterOrEqual(t, selectItem(s, itemID), 0)
}

func TestStartGame(t *testing.T) {
	s := newTestStore(t)
	st := s.State()
	assert.True(t, st.Running)
	assert.Equal(t, UINone, st.ActiveUI)
	assert.Equal(t, StartingGold, st.Player.Gold)
	assert.Equal(t, energy.Initial, st.Energy.Current)
	assert.Equal(t, "Tester", st.Player.Name)
	assert.Equal(t, inventory.Starting(), st.Inventory)
	assert.NotEmpty(t, st.SaveID)
}

func TestHoeEightTimesCostsSixteenEnergy(t *testing.T) {
	s := newTestStore(t)
	selectItem(s, assets.ToolItemID(assets.Hoe))
	for i := range 8 {
		placeAt(s, 8+i, 15, gamemap.Right)
		require.True(t, s.UseTool(), "swing %d", i)
	}
	assert.Equal(t, 254.0, s.State().Energy.Current)
	tile, _ := s.State().FarmTiles.At(9, 15)
	assert.Equal(t, farming.Tilled, tile.Type)
}

func TestFailedToolUseCostsNothing(t *testing.T) {
	s := newTestStore(t)
	selectItem(s, assets.ToolItemID(assets.Hoe))
	placeAt(s, 1, 8, gamemap.Left) // faces the water border
	assert.False(t, s.UseTool())

	selectItem(s, assets.ToolItemID(assets.WateringCan))
	placeAt(s, 10, 15, gamemap.Right) // untilled grass
	assert.False(t, s.UseTool())

	selectItem(s, assets.ToolItemID(assets.Axe))
	assert.False(t, s.UseTool())

	assert.Equal(t, energy.Initial, s.State().Energy.Current)
}

func TestToolUpgradeLowersCost(t *testing.T) {
	s := newTestStore(t)
	s.st.Player.Gold = 5000
	require.True(t, s.AddItem(assets.ItemCopperBar, 5, ""))
	require.True(t, s.UpgradeTool(assets.Axe))
	assert.Equal(t, assets.LevelCopper, s.State().ToolLevels[assets.Axe])
	assert.Equal(t, 3000, s.State().Player.Gold)
	assert.Zero(t, inventory.Count(s.State().Inventory, assets.ItemCopperBar))

	assert.False(t, s.UpgradeTool(assets.Axe), "no iron bars")
}

func TestPlantWaterAndGrowOvernight(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 10, 15, gamemap.Right)

	selectItem(s, assets.ToolItemID(assets.Hoe))
	require.True(t, s.UseTool())
	selectItem(s, assets.ToolItemID(assets.WateringCan))
	require.True(t, s.UseTool())
	selectItem(s, "parsnip_seeds")
	require.True(t, s.UseTool(), "seeds fall through to planting")
	assert.Equal(t, 14, inventory.Count(s.State().Inventory, "parsnip_seeds"))

	s.Sleep()
	tile, _ := s.State().FarmTiles.At(11, 15)
	require.NotNil(t, tile.Crop)
	assert.Equal(t, 1, tile.Crop.DaysInCurrentStage)
	assert.Equal(t, 2, s.State().Time.Day)
	assert.Equal(t, UISleep, s.State().ActiveUI)
}

func ripen(s *Store, x, y int, cropID string) {
	g := farming.Till(s.st.FarmTiles, x, y).Grid
	row := append([]farming.Tile(nil), g[y]...)
	row[x].Crop = &farming.Crop{CropID: cropID, CurrentStage: 4, FullyGrown: true, Quality: assets.Normal}
	g[y] = row
	s.st.FarmTiles = g
}

func TestScytheHarvest(t *testing.T) {
	s := newTestStore(t)
	ripen(s, 11, 15, "parsnip")
	placeAt(s, 10, 15, gamemap.Right)
	selectItem(s, assets.ToolItemID(assets.Scythe))

	require.True(t, s.UseTool())
	assert.Equal(t, 1, inventory.Count(s.State().Inventory, "parsnip"))
	assert.Equal(t, 1, s.State().Statistics.CropsHarvested)
	assert.True(t, s.State().Flags[FlagFirstHarvest])
	assert.Equal(t, energy.Initial, s.State().Energy.Current, "the scythe is free")

	tile, _ := s.State().FarmTiles.At(11, 15)
	assert.Nil(t, tile.Crop)
	assert.Equal(t, farming.Tilled, tile.Type)
}

func TestHarvestBlockedWhenBackpackFull(t *testing.T) {
	s := newTestStore(t)
	for i := range s.st.Inventory {
		if s.st.Inventory[i].Empty() {
			s.st.Inventory[i] = inventory.Slot{ItemID: assets.ItemWood, Quantity: 999}
		}
	}
	ripen(s, 11, 15, "parsnip")
	placeAt(s, 10, 15, gamemap.Right)
	selectItem(s, assets.ToolItemID(assets.Scythe))

	assert.False(t, s.UseTool())
	tile, _ := s.State().FarmTiles.At(11, 15)
	assert.NotNil(t, tile.Crop, "crop stays in the ground")
}

func TestForcedSleepWhenPassedOut(t *testing.T) {
	s := newTestStore(t)
	var summaries []DaySummary
	s.onDayEnd = func(d DaySummary) { summaries = append(summaries, d) }

	s.st.Energy = energy.ConsumeTool(s.st.Energy, 300)
	require.True(t, s.st.Energy.PassedOut)

	s.UpdateGameTime(step)
	st := s.State()
	assert.Equal(t, 2, st.Time.Day)
	assert.Equal(t, math.Floor(energy.Initial*0.5), st.Energy.Current)
	assert.False(t, st.Energy.PassedOut)
	assert.Equal(t, UISleep, st.ActiveUI)
	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Forced)
	assert.Equal(t, 1, summaries[0].Day)
}

func TestForcedSleepAtCutoff(t *testing.T) {
	s := newTestStore(t)
	s.st.Time.Hour = gametime.CutoffHour - 1
	s.st.Time.Minute = 59.5

	s.UpdateGameTime(1)
	assert.Equal(t, 2, s.State().Time.Day)
	assert.Equal(t, gametime.StartHour, s.State().Time.Hour)
	assert.Equal(t, math.Floor(energy.Initial*0.5), s.State().Energy.Current)
}

func TestSleepRecoveryDependsOnBedtime(t *testing.T) {
	cases := []struct {
		hour int
		want float64
	}{
		{22, 270},
		{24, 202},
		{25, 135},
	}
	for _, c := range cases {
		s := newTestStore(t)
		s.st.Energy.Current = 10
		s.st.Time.Hour = c.hour
		s.Sleep()
		assert.Equal(t, c.want, s.State().Energy.Current, "bed at %d", c.hour)
	}
}

func TestSleepShipsBinAndUpdatesStatistics(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.AddItem("parsnip", 3, assets.Silver))
	slot := selectItem(s, "parsnip")
	require.True(t, s.AddToShippingBin(slot, 3))
	assert.Zero(t, inventory.Count(s.State().Inventory, "parsnip"))

	s.Sleep()
	st := s.State()
	want := 3 * 43 // floor(35 * 1.25)
	assert.Equal(t, StartingGold+want, st.Player.Gold)
	assert.Equal(t, want, st.TodayEarnings)
	assert.Equal(t, want, st.Statistics.TotalEarnings)
	assert.Equal(t, 1, st.Statistics.DaysFarmed)
	assert.Empty(t, st.ShippingBin)
	assert.True(t, st.Flags[FlagFirstSale])
}

func TestShippingBinRefusesWorthlessItems(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.AddToShippingBin(0, 1), "tools have no sale value")
	assert.False(t, s.AddToShippingBin(5, 99), "more than the stack")
}

func TestInteractShipsAtBin(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 9, 7, gamemap.Up)
	selectItem(s, "parsnip_seeds")
	require.True(t, s.Interact())
	assert.Zero(t, inventory.Count(s.State().Inventory, "parsnip_seeds"))
	require.Len(t, s.State().ShippingBin, 1)
	assert.Equal(t, 15, s.State().ShippingBin[0].Quantity)
}

func TestInteractWithHouseSleeps(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 5, 7, gamemap.Up)
	require.True(t, s.Interact())
	assert.Equal(t, 2, s.State().Time.Day)
}

func TestGiftLovedItemOncePerDay(t *testing.T) {
	s := newTestStore(t)
	giveAndSelect(t, s, "strawberry", 2)

	require.True(t, s.GiveGift("robin"))
	st := s.State()
	robin := st.NPCs[1]
	assert.Equal(t, "robin", robin.ID)
	assert.Equal(t, 80, robin.Hearts)
	assert.True(t, robin.GiftedToday)
	assert.Equal(t, UIDialogue, st.ActiveUI)
	assert.Equal(t, 1, inventory.Count(st.Inventory, "strawberry"))

	s.CloseDialogue()
	assert.False(t, s.GiveGift("robin"))
	assert.Equal(t, 80, s.State().NPCs[1].Hearts)
	assert.Equal(t, 1, inventory.Count(s.State().Inventory, "strawberry"))
	assert.Equal(t, UIDialogue, s.State().ActiveUI, "refusal still explains itself")
}

func TestTalkBonusOncePerDay(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.TalkToNPC("pierre"))
	assert.Equal(t, 20, s.State().NPCs[0].Hearts)
	require.NotNil(t, s.State().Dialogue)
	assert.Equal(t, "Pierre", s.State().Dialogue.Name)

	s.CloseDialogue()
	s.TalkToNPC("pierre")
	assert.Equal(t, 20, s.State().NPCs[0].Hearts)

	s.Sleep()
	assert.False(t, s.State().NPCs[0].TalkedToday)
}

func shopIndex(s *Store, itemID string) int {
	for i, it := range s.st.ShopItems {
		if it.ItemID == itemID {
			return i
		}
	}
	return -1
}

func TestPurchaseWithoutEnoughGold(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.OpenShop(assets.ShopPierre))
	i := shopIndex(s, assets.ItemBasicFertilizer)
	require.GreaterOrEqual(t, i, 0)
	s.SetShopSelection(i)
	s.st.Player.Gold = 50
	before := append(inventory.Inventory(nil), s.st.Inventory...)

	assert.False(t, s.PurchaseItem())
	assert.Equal(t, 50, s.State().Player.Gold)
	assert.Equal(t, before, s.State().Inventory)
}

func TestPurchaseSeeds(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.OpenShop(assets.ShopPierre))
	assert.True(t, s.State().Flags[FlagShopVisited])
	s.SetShopSelection(shopIndex(s, "parsnip_seeds"))

	require.True(t, s.PurchaseItem())
	assert.Equal(t, StartingGold-20, s.State().Player.Gold)
	assert.Equal(t, 16, inventory.Count(s.State().Inventory, "parsnip_seeds"))
}

func TestBackpackUpgrade(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.UpgradeBackpack())
	s.st.Player.Gold = 2500
	require.True(t, s.UpgradeBackpack())
	assert.Len(t, s.State().Inventory, inventory.MediumSize)
	assert.Equal(t, 500, s.State().Player.Gold)
}

func TestUseSelectedItem(t *testing.T) {
	s := newTestStore(t)
	s.st.Energy.Current = 100
	giveAndSelect(t, s, assets.ItemBread, 1)
	require.True(t, s.UseSelectedItem())
	assert.Equal(t, 150.0, s.State().Energy.Current)
	assert.Zero(t, inventory.Count(s.State().Inventory, assets.ItemBread))

	giveAndSelect(t, s, assets.ItemStardrop, 1)
	require.True(t, s.UseSelectedItem())
	assert.Equal(t, energy.Initial+energy.StardropBonus, s.State().Energy.Max)

	selectItem(s, assets.ToolItemID(assets.Hoe))
	assert.False(t, s.UseSelectedItem())
}

func TestMovementAcceleratesAndFaces(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 10, 15, gamemap.Down)
	x0 := s.st.Player.Position.X

	s.MovePlayer([]gamemap.Direction{gamemap.Right}, false, step)
	p := s.State().Player
	assert.InDelta(t, Acceleration*step, p.Velocity.X, 1e-9)
	assert.InDelta(t, x0+Acceleration*step*step, p.Position.X, 1e-9)
	assert.Equal(t, gamemap.Right, p.Direction)
	assert.True(t, p.IsMoving)
	assert.Equal(t, 1, s.State().Statistics.StepsWalked)

	for range 60 {
		s.MovePlayer([]gamemap.Direction{gamemap.Right}, false, step)
	}
	assert.InDelta(t, PlayerSpeed, s.State().Player.Velocity.X, 1e-9, "capped at top speed")
}

func TestDiagonalIsNormalized(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 12, 22, gamemap.Down)
	for range 60 {
		s.MovePlayer([]gamemap.Direction{gamemap.Up, gamemap.Right}, false, step)
	}
	v := s.State().Player.Velocity
	assert.InDelta(t, PlayerSpeed, math.Hypot(v.X, v.Y), 1e-6)
	assert.Equal(t, gamemap.Right, s.State().Player.Direction)
}

func TestSprintDrainsEnergy(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 6, 15, gamemap.Down)
	for range 60 {
		s.MovePlayer([]gamemap.Direction{gamemap.Right}, true, step)
	}
	assert.InDelta(t, energy.Initial-energy.SprintPerSecond, s.State().Energy.Current, 1e-9)
	assert.Greater(t, s.State().Player.Velocity.X, PlayerSpeed)
}

func TestWallStopsAndSlides(t *testing.T) {
	s := newTestStore(t)
	// Just below the house wall on row 6.
	s.st.Player.Position = gamemap.Vec{X: 5*32 + 16, Y: 7*32 + 1}
	s.st.Player.Velocity = gamemap.Vec{Y: -PlayerSpeed}
	s.MovePlayer([]gamemap.Direction{gamemap.Up}, false, step)
	p := s.State().Player
	assert.Equal(t, 7.0*32+1, p.Position.Y)
	assert.Zero(t, p.Velocity.Y)
	assert.False(t, p.IsMoving)

	s.st.Player.Velocity = gamemap.Vec{X: 200, Y: -200}
	s.MovePlayer([]gamemap.Direction{gamemap.Up, gamemap.Right}, false, step)
	p = s.State().Player
	assert.Equal(t, 7.0*32+1, p.Position.Y)
	assert.Greater(t, p.Position.X, 5.0*32+16, "slides along the wall")
	assert.Zero(t, p.Velocity.Y)
}

func TestCoastDecelerates(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 15, 15, gamemap.Left)
	s.st.Player.Velocity = gamemap.Vec{X: 100}
	s.Coast(step)
	p := s.State().Player
	assert.InDelta(t, 100-Deceleration*step, p.Velocity.X, 1e-9)
	assert.Equal(t, gamemap.Left, p.Direction, "coasting keeps the facing")

	for range 10 {
		s.Coast(step)
	}
	assert.Zero(t, s.State().Player.Velocity.X)
	assert.False(t, s.State().Player.IsMoving)
}

func TestAnimationWraps(t *testing.T) {
	s := newTestStore(t)
	s.st.Player.IsMoving = true
	s.st.Player.AnimationFrame = 3.9
	s.UpdateAnimation(step)
	assert.InDelta(t, 0.05, s.State().Player.AnimationFrame, 1e-9)
}

func TestModalScreensFreezeTheWorld(t *testing.T) {
	s := newTestStore(t)
	s.SetActiveUI(UIInventory)
	assert.True(t, s.State().Paused)

	s.UpdateGameTime(10)
	assert.Equal(t, gametime.New(), s.State().Time)
	x := s.st.Player.Position
	s.MovePlayer([]gamemap.Direction{gamemap.Right}, false, step)
	assert.Equal(t, x, s.State().Player.Position)
	selectItem(s, assets.ToolItemID(assets.Hoe))
	assert.False(t, s.UseTool())

	s.CloseUI()
	assert.False(t, s.State().Paused)
	s.UpdateGameTime(7)
	assert.Equal(t, 6, s.State().Time.Hour)
	assert.InDelta(t, 10, s.State().Time.Minute, 1e-9)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 10, 15, gamemap.Right)
	selectItem(s, assets.ToolItemID(assets.Hoe))
	require.True(t, s.UseTool())
	s.st.Player.Gold = 777
	s.TalkToNPC("robin")
	s.CloseUI()

	require.True(t, s.Save())
	want := *s.State()

	s.StartGame("Someone else")
	require.True(t, s.Load())
	got := s.State()
	assert.Equal(t, want.SaveID, got.SaveID)
	assert.Equal(t, want.PlayerName, got.PlayerName)
	assert.Equal(t, want.Player, got.Player)
	assert.Equal(t, want.Energy, got.Energy)
	assert.Equal(t, want.Time, got.Time)
	assert.Equal(t, want.Inventory, got.Inventory)
	assert.Equal(t, want.FarmTiles, got.FarmTiles)
	assert.Equal(t, want.NPCs, got.NPCs)
	assert.Equal(t, want.Statistics, got.Statistics)
	assert.Equal(t, want.ToolLevels, got.ToolLevels)
	assert.Equal(t, UINone, got.ActiveUI)
}

func TestLoadWithoutSaveFails(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.Load())
	s.saves = nil
	assert.False(t, s.Save())
}

type fakeInput struct {
	dirs     []gamemap.Direction
	action   bool
	escape   bool
	inv      bool
	interact bool
	runes    map[rune]bool
	nav      gamemap.Direction
	hotbar   int
	ended    int
}

func (f *fakeInput) Directions() []gamemap.Direction { return f.dirs }
func (f *fakeInput) Sprinting() bool                 { return false }
func (f *fakeInput) NavPressed() (gamemap.Direction, bool) {
	return f.nav, f.nav != ""
}
func (f *fakeInput) ActionPressed() bool    { return f.action }
func (f *fakeInput) EscapePressed() bool    { return f.escape }
func (f *fakeInput) InventoryPressed() bool { return f.inv }
func (f *fakeInput) InteractPressed() bool  { return f.interact }
func (f *fakeInput) GiftPressed() bool      { return false }
func (f *fakeInput) HotbarCycle() int       { return 0 }
func (f *fakeInput) HotbarSelection() (int, bool) {
	return f.hotbar - 1, f.hotbar > 0
}
func (f *fakeInput) RunePressed(r rune) bool { return f.runes[r] }
func (f *fakeInput) MouseJustClicked() bool  { return false }
func (f *fakeInput) EndFrame() {
	f.ended++
	f.action, f.escape, f.inv, f.interact = false, false, false, false
	f.runes = nil
	f.nav = ""
	f.hotbar = 0
}

func TestUpdateController(t *testing.T) {
	s := newTestStore(t)
	placeAt(s, 10, 15, gamemap.Right)
	in := &fakeInput{}

	in.hotbar = 1 // hoe
	in.action = true
	s.Update(in, step)
	tile, _ := s.State().FarmTiles.At(11, 15)
	assert.Equal(t, farming.Tilled, tile.Type)
	assert.Equal(t, 1, in.ended)
	assert.Greater(t, s.State().Time.Minute, 0.0)

	in.escape = true
	s.Update(in, step)
	assert.Equal(t, UIMenu, s.State().ActiveUI)

	in.runes = map[rune]bool{KeySave: true}
	s.Update(in, step)
	assert.True(t, s.saves.Exists())

	in.runes = map[rune]bool{KeyQuit: true}
	s.Update(in, step)
	assert.True(t, s.State().Quit)

	in.escape = true
	s.Update(in, step)
	assert.Equal(t, UINone, s.State().ActiveUI)

	in.dirs = []gamemap.Direction{gamemap.Down}
	y := s.State().Player.Position.Y
	s.Update(in, step)
	assert.Greater(t, s.State().Player.Position.Y, y)
}

func TestUpdateShopScreen(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.OpenShop(assets.ShopPierre))
	in := &fakeInput{nav: gamemap.Down}
	s.Update(in, step)
	assert.Equal(t, 1, s.State().ShopSelection)

	in.nav = gamemap.Up
	s.Update(in, step)
	in.nav = gamemap.Up
	s.Update(in, step)
	assert.Equal(t, len(s.State().ShopItems)-1, s.State().ShopSelection, "wraps")

	gold := s.State().Player.Gold
	s.SetShopSelection(shopIndex(s, "parsnip_seeds"))
	in.action = true
	s.Update(in, step)
	assert.Equal(t, gold-20, s.State().Player.Gold)

	in.escape = true
	s.Update(in, step)
	assert.Equal(t, UINone, s.State().ActiveUI)
}

func TestUpdateInventoryScreen(t *testing.T) {
	s := newTestStore(t)
	in := &fakeInput{inv: true}
	s.Update(in, step)
	require.Equal(t, UIInventory, s.State().ActiveUI)

	in.nav = gamemap.Right
	s.Update(in, step)
	assert.Equal(t, 1, s.State().InventoryCursor)

	in.action = true
	s.Update(in, step) // swap slot 1 into hotbar slot 0
	assert.Equal(t, assets.ToolItemID(assets.WateringCan), s.State().Inventory[0].ItemID)
	assert.Equal(t, assets.ToolItemID(assets.Hoe), s.State().Inventory[1].ItemID)

	in.inv = true
	s.Update(in, step)
	assert.Equal(t, UINone, s.State().ActiveUI)
}

func TestDiscardSlot(t *testing.T) {
	s := newTestStore(t)
	seeds := len(assets.ToolTypes)
	require.Equal(t, "parsnip_seeds", s.State().Inventory[seeds].ItemID)

	assert.False(t, s.DiscardSlot(0), "tools are kept")
	assert.Equal(t, assets.ToolItemID(assets.Hoe), s.State().Inventory[0].ItemID)
	assert.False(t, s.DiscardSlot(len(s.State().Inventory)-1), "empty slot")
	assert.False(t, s.DiscardSlot(-1))

	s.SetActiveUI(UIInventory)
	s.State().InventoryCursor = seeds
	s.Update(&fakeInput{runes: map[rune]bool{KeyTrash: true}}, step)
	assert.True(t, s.State().Inventory[seeds].Empty())
	assert.Contains(t, s.State().Messages, "Threw away 15 Parsnip Seeds.")
}

func TestRemoveFromSlot(t *testing.T) {
	s := newTestStore(t)
	seeds := len(assets.ToolTypes)
	assert.True(t, s.RemoveFromSlot(seeds, 5))
	assert.Equal(t, 10, s.State().Inventory[seeds].Quantity)
	assert.False(t, s.RemoveFromSlot(seeds, 11))
	assert.Equal(t, 10, s.State().Inventory[seeds].Quantity)
}
