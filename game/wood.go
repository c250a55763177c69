package game

type PlaceWoodRequest struct {
	ClearingID string `json:"clearingId"`
}

type PlaceWoodResponse struct {
	State *GameState    `json:"state"`
	Token TokenInstance `json:"token"`
}

// PlaceWood produces one wood token at a Marquise sawmill.
func (r *Rules) PlaceWood(gs *GameState, req PlaceWoodRequest) (*PlaceWoodResponse, error) {
	next := gs.Copy()
	next.Recompute()
	clearing, _, err := next.clearing(r.Board, PlaceWoodAction, req.ClearingID)
	if err != nil {
		return nil, err
	}
	if !clearing.hasBuilding(Marquise, func(t BuildingType) bool { return t == Sawmill }) {
		return nil, invalid(PlaceWoodAction, "wood can only be placed in clearings with a marquise sawmill")
	}
	if next.Factions.Marquise.WoodInSupply <= 0 {
		return nil, invalid(PlaceWoodAction, "no wood remaining in marquise supply")
	}

	token := TokenInstance{
		ID:      newPieceID(Marquise, string(Wood), req.ClearingID),
		Faction: Marquise,
		Type:    Wood,
	}
	clearing.Tokens = append(clearing.Tokens, token)

	next.Recompute()
	return &PlaceWoodResponse{State: next, Token: token}, nil
}
