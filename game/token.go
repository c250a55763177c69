package game

type TokenRequest struct {
	Faction    Faction   `json:"faction"`
	ClearingID string    `json:"clearingId"`
	TokenType  TokenType `json:"tokenType"`
}

type TokenResponse struct {
	State           *GameState    `json:"state"`
	Token           TokenInstance `json:"token"`
	SupportersSpent int           `json:"supportersSpent,omitempty"`
	VictoryPoints   int           `json:"victoryPoints"`
}

// PlaceToken places a token in a clearing. Sympathy is spread by the
// Woodland Alliance by spending supporters; wood comes out of the Marquise
// supply.
func (r *Rules) PlaceToken(gs *GameState, req TokenRequest) (*TokenResponse, error) {
	if !req.Faction.valid() {
		return nil, invalid(TokenAction, "unknown faction %q", req.Faction)
	}
	switch req.TokenType {
	case Sympathy:
		if req.Faction != WoodlandAlliance {
			return nil, invalid(TokenAction, "only the woodland alliance can place sympathy tokens")
		}
	case Wood:
		if req.Faction != Marquise {
			return nil, invalid(TokenAction, "only the marquise can place wood tokens")
		}
	case OtherToken:
	default:
		return nil, invalid(TokenAction, "unknown token type %q", req.TokenType)
	}

	next := gs.Copy()
	next.Recompute()
	clearing, def, err := next.clearing(r.Board, TokenAction, req.ClearingID)
	if err != nil {
		return nil, err
	}

	res := &TokenResponse{}
	switch req.TokenType {
	case Sympathy:
		spent, vp, err := spreadSympathy(next, clearing, def)
		if err != nil {
			return nil, err
		}
		res.SupportersSpent, res.VictoryPoints = spent, vp
	case Wood:
		if next.Factions.Marquise.WoodInSupply <= 0 {
			return nil, invalid(TokenAction, "no wood remaining in marquise supply")
		}
	}

	res.Token = TokenInstance{
		ID:      newPieceID(req.Faction, string(req.TokenType), req.ClearingID),
		Faction: req.Faction,
		Type:    req.TokenType,
	}
	clearing.Tokens = append(clearing.Tokens, res.Token)

	next.Recompute()
	res.State = next
	return res, nil
}

// SympathyCost returns the supporters needed to spread sympathy into a
// clearing given the current state.
func SympathyCost(gs *GameState, c *ClearingState) int {
	cost := tableAt(SympathySpreadCost, gs.Factions.WoodlandAlliance.SympathyTrack.SympathyPlaced)
	if underMartialLaw(c) {
		cost++
	}
	return cost
}

// underMartialLaw reports whether any enemy faction has three or more
// warriors in the clearing.
func underMartialLaw(c *ClearingState) bool {
	for f, n := range c.Warriors {
		if f != WoodlandAlliance && n >= MartialLawWarriors {
			return true
		}
	}
	return false
}

// spreadSympathy pays for a sympathy token and scores it. Supporters of the
// clearing's suit are spent first, birds cover the remainder. Nothing is
// spent unless the whole cost can be paid.
func spreadSympathy(gs *GameState, c *ClearingState, def Clearing) (spent, vp int, err error) {
	for _, t := range c.Tokens {
		if t.Faction == WoodlandAlliance && t.Type == Sympathy {
			return 0, 0, invalid(TokenAction, "clearing %s already has a sympathy token", def.ID)
		}
	}
	wa := &gs.Factions.WoodlandAlliance
	cost := SympathyCost(gs, c)

	var primary *int
	if def.Suit != Bird {
		primary = wa.Supporters.pool(def.Suit)
	}
	fromSuit := 0
	if primary != nil {
		fromSuit = min(cost, *primary)
	}
	fromBirds := cost - fromSuit
	if fromBirds > wa.Supporters.Bird {
		return 0, 0, invalid(TokenAction, "not enough supporters to spread sympathy in %s (need %d)", def.ID, cost)
	}
	if primary != nil {
		*primary -= fromSuit
	}
	wa.Supporters.Bird -= fromBirds

	points := tableAt(SympathyTrackVictoryPoints, wa.SympathyTrack.SympathyPlaced)
	return cost, gs.addVictoryPoints(WoodlandAlliance, points), nil
}
