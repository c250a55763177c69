package game

// Recompute returns a copy of gs with every derived counter re-derived from
// the pieces on the board. Recompute(Recompute(s)) equals Recompute(s).
func Recompute(gs *GameState) *GameState {
	next := gs.Copy()
	next.Recompute()
	return next
}

// Recompute re-derives supplies, track positions, map totals and bases in
// place. It is the only code path that writes supply numbers. Executors
// call it on their working copy before reading any counter and again before
// returning.
func (gs *GameState) Recompute() {
	m := &gs.Factions.Marquise
	e := &gs.Factions.Eyrie
	wa := &gs.Factions.WoodlandAlliance

	m.TotalSawmillsOnMap = 0
	m.TotalWorkshopsOnMap = 0
	m.TotalRecruitersOnMap = 0
	m.BuildingTracks.Sawmill.BuiltCount = 0
	m.BuildingTracks.Workshop.BuiltCount = 0
	m.BuildingTracks.Recruiter.BuiltCount = 0
	e.RoostsOnMap = 0
	e.RoostTrack.RoostsPlaced = 0
	wa.SympathyOnMap = 0
	wa.SympathyTrack.SympathyPlaced = 0
	wa.Bases = Bases{}

	warriorsOnMap := map[Faction]int{}
	woodOnBoard := 0

	for _, c := range gs.Board.Clearings {
		for f, n := range c.Warriors {
			if n > 0 {
				warriorsOnMap[f] += n
			}
		}

		for _, b := range c.Buildings {
			switch {
			case b.Faction == Marquise && b.Type == Sawmill:
				m.TotalSawmillsOnMap++
				m.BuildingTracks.Sawmill.BuiltCount++
			case b.Faction == Marquise && b.Type == Workshop:
				m.TotalWorkshopsOnMap++
				m.BuildingTracks.Workshop.BuiltCount++
			case b.Faction == Marquise && b.Type == Recruiter:
				m.TotalRecruitersOnMap++
				m.BuildingTracks.Recruiter.BuiltCount++
			case b.Faction == Eyrie && b.Type == Roost:
				e.RoostsOnMap++
				e.RoostTrack.RoostsPlaced++
			case b.Faction == WoodlandAlliance && b.Type == BaseMouse:
				wa.Bases.Mouse = true
			case b.Faction == WoodlandAlliance && b.Type == BaseRabbit:
				wa.Bases.Rabbit = true
			case b.Faction == WoodlandAlliance && b.Type == BaseFox:
				wa.Bases.Fox = true
			}
		}

		for _, t := range c.Tokens {
			if t.Faction == Marquise && t.Type == Wood {
				woodOnBoard++
			}
			if t.Faction == WoodlandAlliance && t.Type == Sympathy {
				wa.SympathyOnMap++
				wa.SympathyTrack.SympathyPlaced++
			}
		}
	}

	m.WarriorsInSupply = max(0, MarquiseTotalWarriors-warriorsOnMap[Marquise])
	e.WarriorsInSupply = max(0, EyrieTotalWarriors-warriorsOnMap[Eyrie])
	wa.WarriorsInSupply = max(0, WoodlandAllianceTotalWarriors-warriorsOnMap[WoodlandAlliance])
	m.WoodInSupply = max(0, MarquiseTotalWood-woodOnBoard)
}
