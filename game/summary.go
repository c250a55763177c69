package game

import "fmt"

// Summary is a compact, display-oriented view of a game state.
type Summary struct {
	Turn            TurnState         `json:"turn"`
	VictoryTrack    map[Faction]int   `json:"victoryTrack"`
	FactionSupplies []FactionSupply   `json:"factionSupplies"`
	Clearings       []ClearingSummary `json:"clearings"`
}

type FactionSupply struct {
	Faction   Faction        `json:"faction"`
	Warriors  int            `json:"warriors"`
	Resources map[string]int `json:"resources"`
}

type ClearingSummary struct {
	ID         string          `json:"id"`
	Suit       Suit            `json:"suit"`
	Warriors   map[Faction]int `json:"warriors"`
	Buildings  []string        `json:"buildings"`
	Tokens     []string        `json:"tokens"`
	FreeSlots  int             `json:"freeSlots"`
	TotalSlots int             `json:"totalSlots"`
}

// Summarize builds a Summary with clearings in board order.
func Summarize(b *Board, gs *GameState) Summary {
	m := gs.Factions.Marquise
	e := gs.Factions.Eyrie
	wa := gs.Factions.WoodlandAlliance

	decree := map[string]int{}
	for _, col := range DecreeColumns {
		decree["decree_"+string(col)] = len(e.Decree.Columns[col])
	}
	decree["roosts"] = e.RoostsOnMap
	decree["hand"] = e.HandSize

	victory := make(map[Faction]int, len(gs.VictoryTrack))
	for f, vp := range gs.VictoryTrack {
		victory[f] = vp
	}

	s := Summary{
		Turn:         gs.Turn,
		VictoryTrack: victory,
		FactionSupplies: []FactionSupply{
			{
				Faction:  Marquise,
				Warriors: m.WarriorsInSupply,
				Resources: map[string]int{
					"wood":       m.WoodInSupply,
					"sawmills":   m.TotalSawmillsOnMap,
					"workshops":  m.TotalWorkshopsOnMap,
					"recruiters": m.TotalRecruitersOnMap,
				},
			},
			{
				Faction:   Eyrie,
				Warriors:  e.WarriorsInSupply,
				Resources: decree,
			},
			{
				Faction:  WoodlandAlliance,
				Warriors: wa.WarriorsInSupply,
				Resources: map[string]int{
					"officers":          wa.Officers,
					"sympathy":          wa.SympathyOnMap,
					"supporters_mouse":  wa.Supporters.Mouse,
					"supporters_rabbit": wa.Supporters.Rabbit,
					"supporters_fox":    wa.Supporters.Fox,
					"supporters_bird":   wa.Supporters.Bird,
				},
			},
		},
	}

	for _, def := range b.clearings {
		cs := ClearingSummary{
			ID:         def.ID,
			Suit:       def.Suit,
			Warriors:   map[Faction]int{},
			Buildings:  []string{},
			Tokens:     []string{},
			FreeSlots:  def.BuildingSlots,
			TotalSlots: def.BuildingSlots,
		}
		if c, ok := gs.Board.Clearings[def.ID]; ok {
			for f, n := range c.Warriors {
				cs.Warriors[f] = n
			}
			for _, bld := range c.Buildings {
				cs.Buildings = append(cs.Buildings, fmt.Sprintf("%s:%s", bld.Faction, bld.Type))
			}
			for _, t := range c.Tokens {
				cs.Tokens = append(cs.Tokens, fmt.Sprintf("%s:%s", t.Faction, t.Type))
			}
			cs.FreeSlots = max(0, def.BuildingSlots-len(c.Buildings))
		}
		s.Clearings = append(s.Clearings, cs)
	}
	return s
}
