package store

import (
	"fmt"

	"valley-farm/internal/energy"
	"valley-farm/internal/farming"
	"valley-farm/internal/gamemap"
	"valley-farm/internal/gametime"
	"valley-farm/internal/inventory"
	"valley-farm/internal/npc"
	"valley-farm/internal/shop"
)

// farmingLevel feeds the quality roll. There is no skill progression yet.
const farmingLevel = 0

// UpdateGameTime advances the clock by dt real seconds while the world
// runs. Reaching the cutoff hour or passing out forces a sleep at half
// recovery.
func (s *Store) UpdateGameTime(dt float64) {
	if !s.st.Running || s.st.Paused || s.st.ActiveUI != UINone {
		return
	}
	next := gametime.Advance(s.st.Time, dt)
	if gametime.PastCutoff(next) || s.st.Energy.PassedOut {
		s.log.Info("player passed out",
			"hour", next.Hour, "energy", s.st.Energy.Current, "day", s.st.Time.Day)
		s.addMessage("You passed out!")
		s.sleep(true)
		return
	}
	if next.Hour != s.st.Time.Hour {
		s.st.NPCs = npc.UpdatePositions(s.st.NPCs, next.Hour)
	}
	s.st.Time = next
}

// Sleep ends the day in bed.
func (s *Store) Sleep() { s.sleep(false) }

// sleep runs the overnight transition: ship the bin, restore energy, roll
// the calendar, grow the farm with the new day's weather, reset NPC daily
// state, then show the summary.
func (s *Store) sleep(forced bool) {
	ended := s.st.Time
	earnings := s.ProcessShippingBin()

	mult := gametime.SleepRecovery(ended)
	if forced {
		mult = energy.PassOutRecovery
	}
	s.st.Energy = energy.RestoreFromSleep(s.st.Energy, mult)

	next := gametime.AdvanceDay(ended, s.rng)
	s.st.FarmTiles = farming.ProcessDailyGrowth(s.st.FarmTiles, next.Season, next.Weather.IsRain(), farmingLevel, s.rng)
	s.st.NPCs = npc.ResetDaily(s.st.NPCs, gametime.IsNewWeek(next.Day))
	s.st.NPCs = npc.UpdatePositions(s.st.NPCs, next.Hour)

	s.st.Statistics.TotalEarnings += earnings
	s.st.Statistics.DaysFarmed++

	s.st.Time = next
	s.st.TodayEarnings = earnings
	s.st.Player.Velocity = gamemap.Vec{}
	s.st.Player.IsMoving = false
	s.st.Dialogue = nil
	s.st.ActiveUI = UISleep

	summary := DaySummary{
		Day:            ended.Day,
		Season:         ended.Season,
		Year:           ended.Year,
		Earnings:       earnings,
		CropsHarvested: s.harvestedToday,
		Forced:         forced,
		EnergyAfter:    s.st.Energy.Current,
		NextWeather:    next.Weather,
		Gold:           s.st.Player.Gold,
		Statistics:     s.st.Statistics,
	}
	s.st.LastDay = summary
	s.harvestedToday = 0

	s.log.Info("day ended",
		"day", ended.Day, "season", ended.Season, "year", ended.Year,
		"earnings", earnings, "forced", forced, "weather", next.Weather)
	s.addMessage(fmt.Sprintf("Day %d of %s begins. %s.", next.Day, next.Season, next.Weather))
	if s.onDayEnd != nil {
		s.onDayEnd(summary)
	}
}

// ProcessShippingBin sells everything in the bin and returns the gold
// earned.
func (s *Store) ProcessShippingBin() int {
	total := 0
	for _, slot := range s.st.ShippingBin {
		if slot.Empty() {
			continue
		}
		total += shop.ItemSellPrice(slot.ItemID, slot.Quality) * slot.Quantity
	}
	s.st.Player.Gold += total
	s.st.ShippingBin = []inventory.Slot{}
	if total > 0 {
		s.setFlag(FlagFirstSale)
	}
	return total
}
