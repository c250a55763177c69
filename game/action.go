package game

import "fmt"

// ActionType names a kind of action.
type ActionType string

const (
	MoveAction      ActionType = "move"
	BattleAction    ActionType = "battle"
	BuildAction     ActionType = "build"
	RecruitAction   ActionType = "recruit"
	TokenAction     ActionType = "token"
	PlaceWoodAction ActionType = "place_wood"
	BirdsongAction  ActionType = "birdsong"
	EveningAction   ActionType = "evening"
	TurmoilAction   ActionType = "turmoil"
	AdvanceAction   ActionType = "advance"
)

// Action is a request the engine can apply. The set of actions is closed:
// only request types in this package implement it.
type Action interface {
	Type() ActionType
	isAction()
}

func (MoveRequest) Type() ActionType      { return MoveAction }
func (BattleRequest) Type() ActionType    { return BattleAction }
func (BuildRequest) Type() ActionType     { return BuildAction }
func (RecruitRequest) Type() ActionType   { return RecruitAction }
func (TokenRequest) Type() ActionType     { return TokenAction }
func (PlaceWoodRequest) Type() ActionType { return PlaceWoodAction }
func (BirdsongRequest) Type() ActionType  { return BirdsongAction }
func (EveningRequest) Type() ActionType   { return EveningAction }
func (TurmoilRequest) Type() ActionType   { return TurmoilAction }
func (AdvanceRequest) Type() ActionType   { return AdvanceAction }

func (MoveRequest) isAction()      {}
func (BattleRequest) isAction()    {}
func (BuildRequest) isAction()     {}
func (RecruitRequest) isAction()   {}
func (TokenRequest) isAction()     {}
func (PlaceWoodRequest) isAction() {}
func (BirdsongRequest) isAction()  {}
func (EveningRequest) isAction()   {}
func (TurmoilRequest) isAction()   {}
func (AdvanceRequest) isAction()   {}

// Phase resolver and turn requests carry no parameters.
type (
	BirdsongRequest struct{}
	EveningRequest  struct{}
	TurmoilRequest  struct{}
	AdvanceRequest  struct{}
)

// Outcome is the result of applying any action: the next state, the typed
// response of the executor and human-readable log lines.
type Outcome struct {
	Action   ActionType `json:"action"`
	State    *GameState `json:"state"`
	Response any        `json:"response"`
	Log      []string   `json:"log"`
}

// Apply dispatches an action to its executor. The input state is never
// modified.
func (r *Rules) Apply(gs *GameState, a Action) (*Outcome, error) {
	out := &Outcome{Action: a.Type()}
	switch req := a.(type) {
	case MoveRequest:
		res, err := r.Move(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response = res.State, res
		out.Log = []string{fmt.Sprintf("%s moved %d warriors from %s to %s.", req.Faction, res.Moved, req.From, req.To)}
	case BattleRequest:
		res, err := r.Battle(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response, out.Log = res.State, res, res.describe(req)
	case BuildRequest:
		res, err := r.Build(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response = res.State, res
		out.Log = []string{fmt.Sprintf("%s built a %s in %s (+%d VP).", req.Faction, res.Building.Type, req.ClearingID, res.VictoryPoints)}
	case RecruitRequest:
		res, err := r.Recruit(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response = res.State, res
		for _, p := range res.Placements {
			out.Log = append(out.Log, fmt.Sprintf("%s recruited %d warriors in %s.", req.Faction, p.WarriorsPlaced, p.ClearingID))
		}
	case TokenRequest:
		res, err := r.PlaceToken(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response = res.State, res
		out.Log = []string{fmt.Sprintf("%s placed a %s token in %s (+%d VP).", req.Faction, req.TokenType, req.ClearingID, res.VictoryPoints)}
	case PlaceWoodRequest:
		res, err := r.PlaceWood(gs, req)
		if err != nil {
			return nil, err
		}
		out.State, out.Response = res.State, res
		out.Log = []string{fmt.Sprintf("marquise placed wood in %s.", req.ClearingID)}
	case BirdsongRequest:
		res := r.EyrieBirdsong(gs)
		out.State, out.Response, out.Log = res.State, res, res.Log
	case EveningRequest:
		res := r.EyrieEvening(gs)
		out.State, out.Response, out.Log = res.State, res, res.Log
	case TurmoilRequest:
		res, err := r.EyrieTurmoil(gs)
		if err != nil {
			return nil, err
		}
		out.State, out.Response, out.Log = res.State, res, res.Log
	case AdvanceRequest:
		next := r.AdvanceTurn(gs)
		out.State, out.Response = next, next.Turn
		out.Log = []string{fmt.Sprintf("Round %d: %s %s.", next.Turn.RoundNumber, next.Turn.CurrentFaction, next.Turn.Phase)}
	default:
		return nil, fmt.Errorf("unsupported action %T", a)
	}
	return out, nil
}
