package game

import "fmt"

// Scenario is a fixed, hand-authored starting position.
type Scenario struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`

	setup     func(s *scenarioBuilder)
	turn      TurnState
	victories map[Faction]int
}

var scenarios = []Scenario{
	{
		Index:      0,
		Title:      "Eyrie Dominion",
		Type:       "Diplomacy",
		Difficulty: 0,
		setup:      eyrieDominion,
		turn:       TurnState{CurrentFaction: Eyrie, Phase: Daylight, RoundNumber: 3},
		victories:  map[Faction]int{Marquise: 11, Eyrie: 14, WoodlandAlliance: 6},
	},
	{
		Index:      1,
		Title:      "Martial Law",
		Type:       "Clearing Control",
		Difficulty: 1,
		setup:      martialLaw,
		turn:       TurnState{CurrentFaction: Marquise, Phase: Daylight, RoundNumber: 4, ActionSubstep: "recruit"},
		victories:  map[Faction]int{Marquise: 17, Eyrie: 8, WoodlandAlliance: 5},
	},
	{
		Index:      2,
		Title:      "Conquerors",
		Type:       "Combat Skills",
		Difficulty: 2,
		setup:      conquerors,
		turn:       TurnState{CurrentFaction: WoodlandAlliance, Phase: Daylight, RoundNumber: 5, ActionSubstep: "craft"},
		victories:  map[Faction]int{Marquise: 20, Eyrie: 19, WoodlandAlliance: 16},
	},
}

// Scenarios lists the available starting positions in index order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// LookupScenario returns the scenario with the given index. Unknown indices
// resolve to Eyrie Dominion.
func LookupScenario(index int) Scenario {
	if index < 0 || index >= len(scenarios) {
		return scenarios[0]
	}
	return scenarios[index]
}

// BuildScenario lays out a scenario on the board, recomputes the derived
// counters once and then applies the scenario's turn and victory track.
func BuildScenario(b *Board, index int) *GameState {
	sc := LookupScenario(index)
	s := &scenarioBuilder{board: b, state: NewGameState(b)}
	sc.setup(s)
	s.state.Recompute()

	s.state.Turn = sc.turn
	for f, vp := range sc.victories {
		s.state.VictoryTrack[f] = vp
	}
	return s.state
}

// scenarioBuilder applies layout primitives. Scenarios are fixtures, so a
// primitive that would break a board invariant panics.
type scenarioBuilder struct {
	board *Board
	state *GameState
}

func (s *scenarioBuilder) clearing(id string) (*ClearingState, Clearing) {
	def, ok := s.board.Clearing(id)
	c, found := s.state.Board.Clearings[id]
	if !ok || !found {
		panic(fmt.Sprintf("scenario references unknown clearing %q", id))
	}
	return c, def
}

func (s *scenarioBuilder) warriors(id string, f Faction, n int) {
	c, _ := s.clearing(id)
	delete(c.Warriors, f)
	c.addWarriors(f, n)
}

func (s *scenarioBuilder) building(id string, f Faction, t BuildingType) {
	c, def := s.clearing(id)
	slot := len(c.Buildings)
	if slot >= def.BuildingSlots {
		panic(fmt.Sprintf("scenario overfills clearing %s with %s %s", id, f, t))
	}
	c.Buildings = append(c.Buildings, BuildingInstance{
		ID:        fmt.Sprintf("%s_%s_%s_%d", f, t, id, slot),
		Faction:   f,
		Type:      t,
		SlotIndex: slot,
	})
}

func (s *scenarioBuilder) token(id string, f Faction, t TokenType) {
	c, _ := s.clearing(id)
	c.Tokens = append(c.Tokens, TokenInstance{
		ID:      fmt.Sprintf("%s_%s_%s_%d", f, t, id, len(c.Tokens)),
		Faction: f,
		Type:    t,
	})
}

// decree appends a card to a decree column. An empty id is generated from
// the column, suit and position.
func (s *scenarioBuilder) decree(col DecreeColumn, suit Suit, src CardSource, id string) {
	cards := s.state.Factions.Eyrie.Decree.Columns[col]
	if id == "" {
		id = fmt.Sprintf("%s_%s_%d", col, suit, len(cards))
	}
	s.state.Factions.Eyrie.Decree.Columns[col] = append(cards, DecreeCard{Suit: suit, Source: src, ID: id})
}

func (s *scenarioBuilder) officers(n int) {
	s.state.Factions.WoodlandAlliance.Officers = n
}

func eyrieDominion(s *scenarioBuilder) {
	s.building("c1", Marquise, Keep)
	s.building("c4", Marquise, Sawmill)
	s.building("c4", Marquise, Workshop)
	s.building("c7", Marquise, Sawmill)
	s.building("c5", Marquise, Recruiter)
	s.token("c4", Marquise, Wood)
	s.token("c7", Marquise, Wood)

	s.warriors("c1", Marquise, 4)
	s.warriors("c4", Marquise, 3)
	s.warriors("c7", Marquise, 2)
	s.warriors("c5", Marquise, 2)

	s.building("c2", Eyrie, Roost)
	s.building("c5", Eyrie, Roost)
	s.building("c9", Eyrie, Roost)
	s.warriors("c2", Eyrie, 4)
	s.warriors("c5", Eyrie, 3)
	s.warriors("c9", Eyrie, 3)

	s.building("c11", WoodlandAlliance, BaseRabbit)
	s.warriors("c11", WoodlandAlliance, 2)
	s.token("c7", WoodlandAlliance, Sympathy)
	s.token("c11", WoodlandAlliance, Sympathy)
	s.officers(1)

	s.decree(DecreeRecruit, Rabbit, Vizier, "vizier_recruit")
	s.decree(DecreeMove, Bird, Vizier, "vizier_move")
	s.decree(DecreeBattle, Fox, Normal, "")
	s.decree(DecreeBuild, Mouse, Normal, "")
}

func martialLaw(s *scenarioBuilder) {
	s.building("c1", Marquise, Keep)
	s.building("c4", Marquise, Sawmill)
	s.building("c5", Marquise, Workshop)
	s.building("c5", Marquise, Recruiter)
	s.building("c8", Marquise, Sawmill)
	s.building("c10", Marquise, Sawmill)
	s.building("c6", Marquise, Recruiter)
	s.building("c2", Marquise, Workshop)
	s.token("c8", Marquise, Wood)
	s.token("c10", Marquise, Wood)

	s.warriors("c1", Marquise, 4)
	s.warriors("c4", Marquise, 3)
	s.warriors("c5", Marquise, 4)
	s.warriors("c6", Marquise, 3)
	s.warriors("c8", Marquise, 2)
	s.warriors("c10", Marquise, 2)

	s.building("c9", Eyrie, Roost)
	s.warriors("c9", Eyrie, 4)
	s.warriors("c3", Eyrie, 2)

	s.building("c8", WoodlandAlliance, BaseMouse)
	s.warriors("c8", WoodlandAlliance, 3)
	s.token("c7", WoodlandAlliance, Sympathy)
	s.token("c10", WoodlandAlliance, Sympathy)
	s.officers(2)

	s.decree(DecreeRecruit, Mouse, Vizier, "vizier_recruit")
	s.decree(DecreeRecruit, Bird, Normal, "")
	s.decree(DecreeMove, Rabbit, Vizier, "vizier_move")
	s.decree(DecreeBattle, Bird, Normal, "")
}

func conquerors(s *scenarioBuilder) {
	s.building("c1", Marquise, Keep)
	s.building("c4", Marquise, Sawmill)
	s.building("c5", Marquise, Workshop)
	s.building("c7", Marquise, Recruiter)
	s.building("c8", Marquise, Recruiter)
	s.building("c11", Marquise, Workshop)
	s.token("c4", Marquise, Wood)
	s.token("c7", Marquise, Wood)

	s.warriors("c1", Marquise, 3)
	s.warriors("c4", Marquise, 3)
	s.warriors("c5", Marquise, 2)
	s.warriors("c7", Marquise, 2)
	s.warriors("c8", Marquise, 2)

	s.building("c2", Eyrie, Roost)
	s.building("c5", Eyrie, Roost)
	s.building("c9", Eyrie, Roost)
	s.warriors("c2", Eyrie, 3)
	s.warriors("c5", Eyrie, 3)
	s.warriors("c9", Eyrie, 4)
	s.warriors("c6", Eyrie, 2)

	s.building("c8", WoodlandAlliance, BaseMouse)
	s.building("c11", WoodlandAlliance, BaseRabbit)
	s.warriors("c8", WoodlandAlliance, 3)
	s.warriors("c11", WoodlandAlliance, 3)
	s.token("c7", WoodlandAlliance, Sympathy)
	s.token("c8", WoodlandAlliance, Sympathy)
	s.token("c11", WoodlandAlliance, Sympathy)
	s.officers(3)

	s.decree(DecreeRecruit, Fox, Vizier, "vizier_recruit")
	s.decree(DecreeRecruit, Mouse, Normal, "")
	s.decree(DecreeMove, Bird, Vizier, "vizier_move")
	s.decree(DecreeMove, Rabbit, Normal, "")
	s.decree(DecreeBattle, Mouse, Normal, "")
	s.decree(DecreeBuild, Bird, Normal, "")
}
