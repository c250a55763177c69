package game

import "woodland/utils"

// decreeColumnFor maps an action to the decree column it can resolve.
func decreeColumnFor(action ActionType) DecreeColumn {
	switch action {
	case RecruitAction:
		return DecreeRecruit
	case MoveAction:
		return DecreeMove
	case BattleAction:
		return DecreeBattle
	case BuildAction:
		return DecreeBuild
	}
	return ""
}

// UnresolvedDecree returns, per column, the decree cards not yet carried out
// this turn.
func UnresolvedDecree(gs *GameState) map[DecreeColumn][]DecreeCard {
	d := gs.Factions.Eyrie.Decree
	out := make(map[DecreeColumn][]DecreeCard, len(DecreeColumns))
	for _, col := range DecreeColumns {
		out[col] = utils.Filter(d.Columns[col], func(c DecreeCard) bool {
			return !isResolved(d, col, c.ID)
		})
	}
	return out
}

func isResolved(d DecreeState, col DecreeColumn, cardID string) bool {
	return utils.FindIndex(d.Resolved, DecreeResolution{Column: col, CardID: cardID}) >= 0
}

// carryOutDecree checks that an Eyrie action fulfils an unresolved decree
// card of the given column whose suit matches the clearing, and marks that
// card resolved. Bird cards match any clearing; exact suits are used first.
// An empty column means the action is not tied to the decree.
func (r *Rules) carryOutDecree(gs *GameState, action ActionType, f Faction, col DecreeColumn, clearingID string) error {
	if col == "" {
		return nil
	}
	if f != Eyrie {
		return invalid(action, "only the eyrie carry out decree cards")
	}
	if want := decreeColumnFor(action); col != want {
		return invalid(action, "a %s action cannot resolve the %s column", action, col)
	}
	def, ok := r.Board.Clearing(clearingID)
	if !ok {
		return invalid(action, "clearing %s does not exist on this board", clearingID)
	}

	pending := UnresolvedDecree(gs)[col]
	var card *DecreeCard
	for i := range pending {
		if pending[i].Suit == def.Suit {
			card = &pending[i]
			break
		}
	}
	if card == nil {
		for i := range pending {
			if pending[i].Suit == Bird {
				card = &pending[i]
				break
			}
		}
	}
	if card == nil {
		return invalid(action, "no unresolved %s decree card matches %s clearing %s", col, def.Suit, clearingID)
	}

	d := &gs.Factions.Eyrie.Decree
	d.Resolved = append(d.Resolved, DecreeResolution{Column: col, CardID: card.ID})
	return nil
}
