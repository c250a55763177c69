package game

type MoveRequest struct {
	Faction  Faction      `json:"faction"`
	From     string       `json:"from"`
	To       string       `json:"to"`
	Warriors int          `json:"warriors"`
	Decree   DecreeColumn `json:"decree,omitempty"`
}

type MoveResponse struct {
	State *GameState `json:"state"`
	Moved int        `json:"moved"`
}

// Move transfers warriors between two adjacent clearings.
func (r *Rules) Move(gs *GameState, req MoveRequest) (*MoveResponse, error) {
	if !req.Faction.valid() {
		return nil, invalid(MoveAction, "unknown faction %q", req.Faction)
	}
	next := gs.Copy()
	from, _, err := next.clearing(r.Board, MoveAction, req.From)
	if err != nil {
		return nil, err
	}
	to, _, err := next.clearing(r.Board, MoveAction, req.To)
	if err != nil {
		return nil, err
	}
	if req.Warriors <= 0 {
		return nil, invalid(MoveAction, "you must move at least one warrior")
	}
	if !r.Board.AreAdjacent(req.From, req.To) {
		return nil, invalid(MoveAction, "clearing %s is not adjacent to %s", req.From, req.To)
	}
	available := from.Warriors[req.Faction]
	if available < req.Warriors {
		return nil, invalid(MoveAction, "not enough %s warriors in %s (have %d, need %d)", req.Faction, req.From, available, req.Warriors)
	}
	if err := r.carryOutDecree(next, MoveAction, req.Faction, req.Decree, req.From); err != nil {
		return nil, err
	}

	from.addWarriors(req.Faction, -req.Warriors)
	to.addWarriors(req.Faction, req.Warriors)

	next.Recompute()
	return &MoveResponse{State: next, Moved: req.Warriors}, nil
}
