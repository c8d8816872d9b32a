package assets

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed npcs.yaml
var npcYAML []byte

// NPC is a villager definition.
type NPC struct {
	ID         string           `yaml:"id"`
	Name       string           `yaml:"name"`
	Shopkeeper bool             `yaml:"shopkeeper"`
	Home       TilePos          `yaml:"home"`
	Birthday   Birthday         `yaml:"birthday"`
	Greetings  []string         `yaml:"greetings"`
	Lines      []string         `yaml:"lines"`
	HeartLines map[int][]string `yaml:"heart_lines"`
	Gifts      GiftPrefs        `yaml:"gifts"`
	Schedule   []ScheduleEntry  `yaml:"schedule"`
}

// Birthday marks the day an NPC values gifts most.
type Birthday struct {
	Season Season `yaml:"season"`
	Day    int    `yaml:"day"`
}

// GiftPrefs lists item ids by reaction.
type GiftPrefs struct {
	Love    []string `yaml:"love"`
	Like    []string `yaml:"like"`
	Dislike []string `yaml:"dislike"`
	Hate    []string `yaml:"hate"`
}

// ScheduleEntry places an NPC at a tile from Hour onwards.
type ScheduleEntry struct {
	Hour int `yaml:"hour"`
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
}

// Pos returns the entry's tile.
func (e ScheduleEntry) Pos() TilePos { return TilePos{X: e.X, Y: e.Y} }

// HeartThresholds returns the heart levels that unlock special lines,
// highest first.
func (n NPC) HeartThresholds() []int {
	levels := make([]int, 0, len(n.HeartLines))
	for lvl := range n.HeartLines {
		levels = append(levels, lvl)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))
	return levels
}

var npcs = mustParseNPCs(npcYAML)

// ParseNPCs decodes and checks a villager table.
func ParseNPCs(data []byte) ([]NPC, error) {
	var list []NPC
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode npcs: %w", err)
	}
	seen := make(map[string]bool, len(list))
	for _, n := range list {
		if n.ID == "" {
			return nil, fmt.Errorf("npc %q: missing id", n.Name)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("npc %q: duplicate id", n.ID)
		}
		seen[n.ID] = true
		if len(n.Greetings) == 0 || len(n.Lines) == 0 {
			return nil, fmt.Errorf("npc %q: needs greetings and lines", n.ID)
		}
		for i := 1; i < len(n.Schedule); i++ {
			if n.Schedule[i].Hour < n.Schedule[i-1].Hour {
				return nil, fmt.Errorf("npc %q: schedule not sorted at entry %d", n.ID, i)
			}
		}
	}
	return list, nil
}

func mustParseNPCs(data []byte) []NPC {
	list, err := ParseNPCs(data)
	if err != nil {
		panic(err)
	}
	return list
}

// NPCs returns every villager definition in table order.
func NPCs() []NPC {
	out := make([]NPC, len(npcs))
	copy(out, npcs)
	return out
}

// NPCByID looks up a villager.
func NPCByID(id string) (NPC, bool) {
	for _, n := range npcs {
		if n.ID == id {
			return n, true
		}
	}
	return NPC{}, false
}
