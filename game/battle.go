package game

import "fmt"

type BattleRequest struct {
	ClearingID string       `json:"clearingId"`
	Attacker   Faction      `json:"attacker"`
	Defender   Faction      `json:"defender"`
	Decree     DecreeColumn `json:"decree,omitempty"`
}

type VictoryPointsEarned struct {
	Attacker int `json:"attacker"`
	Defender int `json:"defender"`
}

type BattleResponse struct {
	State                    *GameState          `json:"state"`
	Dice                     [2]int              `json:"dice"`
	AttackerHits             int                 `json:"attackerHits"`
	DefenderHits             int                 `json:"defenderHits"`
	AttackerRolledHits       int                 `json:"attackerRolledHits"`
	DefenderRolledHits       int                 `json:"defenderRolledHits"`
	AttackerExtraHits        int                 `json:"attackerExtraHits"`
	DefenderExtraHits        int                 `json:"defenderExtraHits"`
	DefenderWarriorsRemoved  int                 `json:"defenderWarriorsRemoved"`
	AttackerWarriorsRemoved  int                 `json:"attackerWarriorsRemoved"`
	DefenderBuildingsRemoved []BuildingInstance  `json:"defenderBuildingsRemoved"`
	AttackerBuildingsRemoved []BuildingInstance  `json:"attackerBuildingsRemoved"`
	DefenderTokensRemoved    []TokenInstance     `json:"defenderTokensRemoved"`
	AttackerTokensRemoved    []TokenInstance     `json:"attackerTokensRemoved"`
	VictoryPointsEarned      VictoryPointsEarned `json:"victoryPointsEarned"`
}

// casualties are the pieces a faction lost to hits.
type casualties struct {
	warriors  int
	buildings []BuildingInstance
	tokens    []TokenInstance
}

func (c casualties) scored() int {
	return len(c.buildings) + len(c.tokens)
}

// Battle resolves one battle in a clearing. Two d4 (0-3) are rolled: the
// higher goes to the attacker and the lower to the defender, each capped by
// that side's warriors. A defender without warriors is defenseless and takes
// one extra hit. Hits are dealt simultaneously.
func (r *Rules) Battle(gs *GameState, req BattleRequest) (*BattleResponse, error) {
	if !req.Attacker.valid() {
		return nil, invalid(BattleAction, "unknown attacker %q", req.Attacker)
	}
	if !req.Defender.valid() {
		return nil, invalid(BattleAction, "unknown defender %q", req.Defender)
	}
	next := gs.Copy()
	clearing, _, err := next.clearing(r.Board, BattleAction, req.ClearingID)
	if err != nil {
		return nil, err
	}
	if req.Attacker == req.Defender {
		return nil, invalid(BattleAction, "%s cannot battle itself", req.Attacker)
	}

	attackerWarriors := clearing.Warriors[req.Attacker]
	defenderWarriors := clearing.Warriors[req.Defender]
	if attackerWarriors == 0 {
		return nil, invalid(BattleAction, "attacker must have warriors in %s to battle", req.ClearingID)
	}
	if err := r.carryOutDecree(next, BattleAction, req.Attacker, req.Decree, req.ClearingID); err != nil {
		return nil, err
	}

	dice := [2]int{r.Dice.Roll(BattleDieSides), r.Dice.Roll(BattleDieSides)}
	high, low := max(dice[0], dice[1]), min(dice[0], dice[1])

	res := &BattleResponse{Dice: dice}
	res.AttackerRolledHits = min(high, attackerWarriors)
	res.DefenderRolledHits = min(low, defenderWarriors)
	if defenderWarriors == 0 {
		res.AttackerExtraHits++
	}
	res.AttackerHits = res.AttackerRolledHits + res.AttackerExtraHits
	res.DefenderHits = res.DefenderRolledHits + res.DefenderExtraHits

	// Both hit counts were fixed from the pre-battle warriors above, so the
	// order of removal below does not matter.
	lostByDefender := applyHits(clearing, req.Defender, res.AttackerHits)
	lostByAttacker := applyHits(clearing, req.Attacker, res.DefenderHits)

	res.DefenderWarriorsRemoved = lostByDefender.warriors
	res.AttackerWarriorsRemoved = lostByAttacker.warriors
	res.DefenderBuildingsRemoved = lostByDefender.buildings
	res.AttackerBuildingsRemoved = lostByAttacker.buildings
	res.DefenderTokensRemoved = lostByDefender.tokens
	res.AttackerTokensRemoved = lostByAttacker.tokens

	res.VictoryPointsEarned.Attacker = next.addVictoryPoints(req.Attacker, lostByDefender.scored())
	res.VictoryPointsEarned.Defender = next.addVictoryPoints(req.Defender, lostByAttacker.scored())

	next.Recompute()
	res.State = next
	return res, nil
}

// applyHits removes a faction's pieces from a clearing: warriors first, then
// buildings, then tokens, each in storage order.
func applyHits(c *ClearingState, f Faction, hits int) casualties {
	var lost casualties
	lost.buildings = []BuildingInstance{}
	lost.tokens = []TokenInstance{}

	lost.warriors = min(c.Warriors[f], hits)
	c.addWarriors(f, -lost.warriors)
	hits -= lost.warriors

	if hits > 0 {
		kept := c.Buildings[:0]
		for _, b := range c.Buildings {
			if hits > 0 && b.Faction == f {
				lost.buildings = append(lost.buildings, b)
				hits--
				continue
			}
			kept = append(kept, b)
		}
		c.Buildings = kept
	}

	if hits > 0 {
		kept := c.Tokens[:0]
		for _, t := range c.Tokens {
			if hits > 0 && t.Faction == f {
				lost.tokens = append(lost.tokens, t)
				hits--
				continue
			}
			kept = append(kept, t)
		}
		c.Tokens = kept
	}
	return lost
}

func (res *BattleResponse) describe(req BattleRequest) []string {
	lines := []string{
		fmt.Sprintf("%s attacked %s in %s, rolling %d and %d.", req.Attacker, req.Defender, req.ClearingID, res.Dice[0], res.Dice[1]),
		fmt.Sprintf("%s dealt %d hits (%d rolled, %d extra); %s dealt %d hits.", req.Attacker, res.AttackerHits, res.AttackerRolledHits, res.AttackerExtraHits, req.Defender, res.DefenderHits),
		fmt.Sprintf("%s lost %d warriors, %d buildings and %d tokens; %s lost %d warriors, %d buildings and %d tokens.",
			req.Defender, res.DefenderWarriorsRemoved, len(res.DefenderBuildingsRemoved), len(res.DefenderTokensRemoved),
			req.Attacker, res.AttackerWarriorsRemoved, len(res.AttackerBuildingsRemoved), len(res.AttackerTokensRemoved)),
	}
	if vp := res.VictoryPointsEarned; vp.Attacker > 0 || vp.Defender > 0 {
		lines = append(lines, fmt.Sprintf("Victory points: %s +%d, %s +%d.", req.Attacker, vp.Attacker, req.Defender, vp.Defender))
	}
	return lines
}
