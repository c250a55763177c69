package game

import "woodland/utils"

// NextPhase returns the phase that follows p.
func NextPhase(p Phase) Phase {
	switch p {
	case Birdsong:
		return Daylight
	case Daylight:
		return Evening
	}
	return Birdsong
}

// NextFaction returns the faction whose turn follows f.
func NextFaction(f Faction) Faction {
	i := utils.FindIndex(Factions, f)
	return Factions[(i+1)%len(Factions)]
}

// AdvanceTurn moves the turn to the next phase. After Evening the next
// faction starts Birdsong, and the round number grows when play returns to
// the first faction.
func (r *Rules) AdvanceTurn(gs *GameState) *GameState {
	next := gs.Copy()
	t := &next.Turn
	t.ActionSubstep = ""
	if t.Phase != Evening {
		t.Phase = NextPhase(t.Phase)
		return next
	}
	t.Phase = Birdsong
	t.CurrentFaction = NextFaction(t.CurrentFaction)
	if t.CurrentFaction == Factions[0] {
		t.RoundNumber++
	}
	return next
}
