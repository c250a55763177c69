package game

import "woodland/utils"

type RecruitRequest struct {
	Faction    Faction      `json:"faction"`
	ClearingID string       `json:"clearingId,omitempty"`
	Warriors   int          `json:"warriors,omitempty"`
	Decree     DecreeColumn `json:"decree,omitempty"`
}

type RecruitPlacement struct {
	ClearingID     string `json:"clearingId"`
	WarriorsPlaced int    `json:"warriorsPlaced"`
}

type RecruitResponse struct {
	State       *GameState         `json:"state"`
	Placements  []RecruitPlacement `json:"placements"`
	TotalPlaced int                `json:"totalPlaced"`
}

// Recruit places warriors from supply according to the faction's rules.
func (r *Rules) Recruit(gs *GameState, req RecruitRequest) (*RecruitResponse, error) {
	if req.Decree != "" && req.Faction != Eyrie {
		return nil, invalid(RecruitAction, "only the eyrie carry out decree cards")
	}
	next := gs.Copy()
	next.Recompute()
	var (
		placements []RecruitPlacement
		err        error
	)
	switch req.Faction {
	case Marquise:
		placements, err = r.recruitMarquise(next)
	case Eyrie:
		placements, err = r.recruitEyrie(next, req)
	case WoodlandAlliance:
		placements, err = r.recruitAlliance(next, req)
	default:
		return nil, invalid(RecruitAction, "unknown faction %q", req.Faction)
	}
	if err != nil {
		return nil, err
	}

	total := 0
	for _, p := range placements {
		total += p.WarriorsPlaced
	}
	if total == 0 {
		return nil, invalid(RecruitAction, "recruit could not place any warriors")
	}

	next.Recompute()
	return &RecruitResponse{State: next, Placements: placements, TotalPlaced: total}, nil
}

// recruitMarquise places one warrior per recruiter in every clearing, in
// board order, until supply runs out.
func (r *Rules) recruitMarquise(gs *GameState) ([]RecruitPlacement, error) {
	isRecruiter := func(t BuildingType) bool { return t == Recruiter }

	var withRecruiters []*ClearingState
	for _, c := range gs.orderedClearings(r.Board) {
		if c.hasBuilding(Marquise, isRecruiter) {
			withRecruiters = append(withRecruiters, c)
		}
	}
	if len(withRecruiters) == 0 {
		return nil, invalid(RecruitAction, "no recruiters on the map")
	}
	available := gs.Factions.Marquise.WarriorsInSupply
	if available <= 0 {
		return nil, invalid(RecruitAction, "no marquise warriors left in supply")
	}

	var placements []RecruitPlacement
	for _, c := range withRecruiters {
		if available <= 0 {
			break
		}
		recruiters := utils.CountFunc(c.Buildings, func(b BuildingInstance) bool {
			return b.Faction == Marquise && b.Type == Recruiter
		})
		n := min(recruiters, available)
		c.addWarriors(Marquise, n)
		placements = append(placements, RecruitPlacement{ClearingID: c.ID, WarriorsPlaced: n})
		available -= n
	}
	return placements, nil
}

func (r *Rules) recruitEyrie(gs *GameState, req RecruitRequest) ([]RecruitPlacement, error) {
	isRoost := func(t BuildingType) bool { return t == Roost }

	target := req.ClearingID
	if target == "" {
		for _, c := range gs.orderedClearings(r.Board) {
			if c.hasBuilding(Eyrie, isRoost) {
				target = c.ID
				break
			}
		}
		if target == "" {
			return nil, invalid(RecruitAction, "eyrie have no roosts to recruit from")
		}
	}
	clearing, _, err := gs.clearing(r.Board, RecruitAction, target)
	if err != nil {
		return nil, err
	}
	if !clearing.hasBuilding(Eyrie, isRoost) {
		return nil, invalid(RecruitAction, "eyrie can only recruit in clearings with a roost")
	}
	available := gs.Factions.Eyrie.WarriorsInSupply
	if available <= 0 {
		return nil, invalid(RecruitAction, "no eyrie warriors left in supply")
	}
	if err := r.carryOutDecree(gs, RecruitAction, Eyrie, req.Decree, target); err != nil {
		return nil, err
	}

	n := min(max(1, req.Warriors), available)
	clearing.addWarriors(Eyrie, n)
	return []RecruitPlacement{{ClearingID: target, WarriorsPlaced: n}}, nil
}

func (r *Rules) recruitAlliance(gs *GameState, req RecruitRequest) ([]RecruitPlacement, error) {
	if req.ClearingID == "" {
		return nil, invalid(RecruitAction, "woodland alliance recruits must name a base clearing")
	}
	clearing, _, err := gs.clearing(r.Board, RecruitAction, req.ClearingID)
	if err != nil {
		return nil, err
	}
	if !clearing.hasBuilding(WoodlandAlliance, BuildingType.isBase) {
		return nil, invalid(RecruitAction, "alliance can only recruit in clearings with one of their bases")
	}
	if gs.Factions.WoodlandAlliance.WarriorsInSupply <= 0 {
		return nil, invalid(RecruitAction, "no woodland alliance warriors left in supply")
	}

	clearing.addWarriors(WoodlandAlliance, 1)
	return []RecruitPlacement{{ClearingID: req.ClearingID, WarriorsPlaced: 1}}, nil
}
