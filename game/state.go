package game

// Faction identifies one of the playable factions.
type Faction string

const (
	Marquise         Faction = "marquise"
	Eyrie            Faction = "eyrie"
	WoodlandAlliance Faction = "woodland_alliance"
)

// Factions in turn order.
var Factions = []Faction{Marquise, Eyrie, WoodlandAlliance}

func (f Faction) valid() bool {
	switch f {
	case Marquise, Eyrie, WoodlandAlliance:
		return true
	}
	return false
}

// Fixed piece totals.
const (
	MarquiseTotalWarriors         = 25
	MarquiseTotalWood             = 8
	EyrieTotalWarriors            = 20
	WoodlandAllianceTotalWarriors = 10
	MaxVictoryPoints              = 30
)

// TotalWarriors returns the number of warriors a faction owns in the box.
func TotalWarriors(f Faction) int {
	switch f {
	case Marquise:
		return MarquiseTotalWarriors
	case Eyrie:
		return EyrieTotalWarriors
	case WoodlandAlliance:
		return WoodlandAllianceTotalWarriors
	}
	return 0
}

type Phase string

const (
	Birdsong Phase = "birdsong"
	Daylight Phase = "daylight"
	Evening  Phase = "evening"
)

type BuildingType string

const (
	Sawmill    BuildingType = "sawmill"
	Workshop   BuildingType = "workshop"
	Recruiter  BuildingType = "recruiter"
	Keep       BuildingType = "keep"
	Roost      BuildingType = "roost"
	BaseMouse  BuildingType = "base_mouse"
	BaseRabbit BuildingType = "base_rabbit"
	BaseFox    BuildingType = "base_fox"
)

// BaseFor returns the Alliance base matching a suit, or "" for suits
// without a base.
func BaseFor(s Suit) BuildingType {
	switch s {
	case Mouse:
		return BaseMouse
	case Rabbit:
		return BaseRabbit
	case Fox:
		return BaseFox
	}
	return ""
}

func (t BuildingType) isBase() bool {
	return t == BaseMouse || t == BaseRabbit || t == BaseFox
}

type TokenType string

const (
	Wood       TokenType = "wood"
	Sympathy   TokenType = "sympathy"
	OtherToken TokenType = "other"
)

type BuildingInstance struct {
	ID        string       `json:"id"`
	Faction   Faction      `json:"faction"`
	Type      BuildingType `json:"type"`
	SlotIndex int          `json:"slotIndex"`
}

type TokenInstance struct {
	ID      string    `json:"id"`
	Faction Faction   `json:"faction"`
	Type    TokenType `json:"type"`
}

// ClearingState holds the pieces currently in a clearing. Warrior entries
// with a zero count are dropped.
type ClearingState struct {
	ID        string             `json:"id"`
	Warriors  map[Faction]int    `json:"warriors"`
	Buildings []BuildingInstance `json:"buildings"`
	Tokens    []TokenInstance    `json:"tokens"`
}

// TotalWarriors counts warriors of every faction in the clearing.
func (c *ClearingState) TotalWarriors() int {
	total := 0
	for _, n := range c.Warriors {
		total += n
	}
	return total
}

func (c *ClearingState) hasBuilding(f Faction, match func(BuildingType) bool) bool {
	for _, b := range c.Buildings {
		if b.Faction == f && match(b.Type) {
			return true
		}
	}
	return false
}

func (c *ClearingState) addWarriors(f Faction, n int) {
	if n == 0 {
		return
	}
	c.Warriors[f] += n
	if c.Warriors[f] <= 0 {
		delete(c.Warriors, f)
	}
}

type BoardState struct {
	Clearings map[string]*ClearingState `json:"clearings"`
}

type BuildingTrackStatus struct {
	DefinitionID string `json:"definitionId"`
	BuiltCount   int    `json:"builtCount"`
}

type MarquiseTracks struct {
	Sawmill   BuildingTrackStatus `json:"sawmill"`
	Workshop  BuildingTrackStatus `json:"workshop"`
	Recruiter BuildingTrackStatus `json:"recruiter"`
}

func (t *MarquiseTracks) track(bt BuildingType) *BuildingTrackStatus {
	switch bt {
	case Sawmill:
		return &t.Sawmill
	case Workshop:
		return &t.Workshop
	case Recruiter:
		return &t.Recruiter
	}
	return nil
}

type MarquiseState struct {
	WarriorsInSupply     int            `json:"warriorsInSupply"`
	WoodInSupply         int            `json:"woodInSupply"`
	BuildingTracks       MarquiseTracks `json:"buildingTracks"`
	TotalSawmillsOnMap   int            `json:"totalSawmillsOnMap"`
	TotalWorkshopsOnMap  int            `json:"totalWorkshopsOnMap"`
	TotalRecruitersOnMap int            `json:"totalRecruitersOnMap"`
}

type DecreeColumn string

const (
	DecreeRecruit DecreeColumn = "recruit"
	DecreeMove    DecreeColumn = "move"
	DecreeBattle  DecreeColumn = "battle"
	DecreeBuild   DecreeColumn = "build"
)

// DecreeColumns in tie-break order.
var DecreeColumns = []DecreeColumn{DecreeRecruit, DecreeMove, DecreeBattle, DecreeBuild}

type CardSource string

const (
	Vizier CardSource = "vizier"
	Normal CardSource = "normal"
)

type DecreeCard struct {
	Suit   Suit       `json:"suit"`
	Source CardSource `json:"source"`
	ID     string     `json:"id"`
}

// DecreeResolution records a decree card carried out this turn.
type DecreeResolution struct {
	Column DecreeColumn `json:"column"`
	CardID string       `json:"cardId"`
}

type DecreeState struct {
	Columns  map[DecreeColumn][]DecreeCard `json:"columns"`
	Resolved []DecreeResolution            `json:"resolved,omitempty"`
}

// CardCount returns the number of cards across all columns.
func (d *DecreeState) CardCount() int {
	n := 0
	for _, col := range DecreeColumns {
		n += len(d.Columns[col])
	}
	return n
}

type RoostTrackStatus struct {
	DefinitionID string `json:"definitionId"`
	RoostsPlaced int    `json:"roostsPlaced"`
}

type EyrieState struct {
	WarriorsInSupply int              `json:"warriorsInSupply"`
	Decree           DecreeState      `json:"decree"`
	RoostTrack       RoostTrackStatus `json:"roostTrack"`
	RoostsOnMap      int              `json:"roostsOnMap"`
	HandSize         int              `json:"handSize"`
}

type Bases struct {
	Mouse  bool `json:"mouse"`
	Rabbit bool `json:"rabbit"`
	Fox    bool `json:"fox"`
}

type SympathyTrackStatus struct {
	DefinitionID   string `json:"definitionId"`
	SympathyPlaced int    `json:"sympathyPlaced"`
}

type Supporters struct {
	Mouse  int `json:"mouse"`
	Rabbit int `json:"rabbit"`
	Fox    int `json:"fox"`
	Bird   int `json:"bird"`
}

func (s *Supporters) pool(suit Suit) *int {
	switch suit {
	case Mouse:
		return &s.Mouse
	case Rabbit:
		return &s.Rabbit
	case Fox:
		return &s.Fox
	case Bird:
		return &s.Bird
	}
	return nil
}

type WoodlandAllianceState struct {
	WarriorsInSupply int                 `json:"warriorsInSupply"`
	Bases            Bases               `json:"bases"`
	Officers         int                 `json:"officers"`
	SympathyTrack    SympathyTrackStatus `json:"sympathyTrack"`
	SympathyOnMap    int                 `json:"sympathyOnMap"`
	Supporters       Supporters          `json:"supporters"`
}

type FactionStates struct {
	Marquise         MarquiseState         `json:"marquise"`
	Eyrie            EyrieState            `json:"eyrie"`
	WoodlandAlliance WoodlandAllianceState `json:"woodland_alliance"`
}

type TurnState struct {
	CurrentFaction Faction `json:"currentFaction"`
	Phase          Phase   `json:"phase"`
	RoundNumber    int     `json:"roundNumber"`
	ActionSubstep  string  `json:"actionSubstep,omitempty"`
}

// GameState is the canonical, serializable state of a game. Executors never
// mutate a GameState they receive; they work on a Copy.
type GameState struct {
	Board        BoardState      `json:"board"`
	Factions     FactionStates   `json:"factions"`
	VictoryTrack map[Faction]int `json:"victoryTrack"`
	Turn         TurnState       `json:"turn"`
}

// NewGameState returns the base state for a board: every supply full, every
// track at zero, marquise to play birdsong of round 1.
func NewGameState(b *Board) *GameState {
	gs := &GameState{
		Board: BoardState{Clearings: make(map[string]*ClearingState, len(b.clearings))},
		Factions: FactionStates{
			Marquise: MarquiseState{
				WarriorsInSupply: MarquiseTotalWarriors,
				WoodInSupply:     MarquiseTotalWood,
				BuildingTracks: MarquiseTracks{
					Sawmill:   BuildingTrackStatus{DefinitionID: "marquise_sawmill"},
					Workshop:  BuildingTrackStatus{DefinitionID: "marquise_workshop"},
					Recruiter: BuildingTrackStatus{DefinitionID: "marquise_recruiter"},
				},
			},
			Eyrie: EyrieState{
				WarriorsInSupply: EyrieTotalWarriors,
				Decree:           DecreeState{Columns: emptyDecree()},
				RoostTrack:       RoostTrackStatus{DefinitionID: "default_roost_track"},
			},
			WoodlandAlliance: WoodlandAllianceState{
				WarriorsInSupply: WoodlandAllianceTotalWarriors,
				SympathyTrack:    SympathyTrackStatus{DefinitionID: "default_sympathy_track"},
			},
		},
		VictoryTrack: map[Faction]int{Marquise: 0, Eyrie: 0, WoodlandAlliance: 0},
		Turn: TurnState{
			CurrentFaction: Marquise,
			Phase:          Birdsong,
			RoundNumber:    1,
		},
	}
	for _, c := range b.clearings {
		gs.Board.Clearings[c.ID] = &ClearingState{
			ID:        c.ID,
			Warriors:  map[Faction]int{},
			Buildings: []BuildingInstance{},
			Tokens:    []TokenInstance{},
		}
	}
	return gs
}

func emptyDecree() map[DecreeColumn][]DecreeCard {
	cols := make(map[DecreeColumn][]DecreeCard, len(DecreeColumns))
	for _, col := range DecreeColumns {
		cols[col] = []DecreeCard{}
	}
	return cols
}

// Normalize replaces nil maps and slices left by decoding with empty ones,
// so a loaded state behaves like a built one. Derived counters are left as
// they are.
func (gs *GameState) Normalize() {
	if gs.Board.Clearings == nil {
		gs.Board.Clearings = map[string]*ClearingState{}
	}
	for id, c := range gs.Board.Clearings {
		if c == nil {
			c = &ClearingState{}
			gs.Board.Clearings[id] = c
		}
		if c.ID == "" {
			c.ID = id
		}
		if c.Warriors == nil {
			c.Warriors = map[Faction]int{}
		}
		if c.Buildings == nil {
			c.Buildings = []BuildingInstance{}
		}
		if c.Tokens == nil {
			c.Tokens = []TokenInstance{}
		}
	}

	d := &gs.Factions.Eyrie.Decree
	if d.Columns == nil {
		d.Columns = emptyDecree()
	}
	for _, col := range DecreeColumns {
		if d.Columns[col] == nil {
			d.Columns[col] = []DecreeCard{}
		}
	}

	if gs.VictoryTrack == nil {
		gs.VictoryTrack = map[Faction]int{}
	}
	for _, f := range Factions {
		if _, ok := gs.VictoryTrack[f]; !ok {
			gs.VictoryTrack[f] = 0
		}
	}
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	clearings := make(map[string]*ClearingState, len(gs.Board.Clearings))
	for id, c := range gs.Board.Clearings {
		warriors := make(map[Faction]int, len(c.Warriors))
		for f, n := range c.Warriors {
			warriors[f] = n
		}
		buildings := make([]BuildingInstance, len(c.Buildings))
		copy(buildings, c.Buildings)
		tokens := make([]TokenInstance, len(c.Tokens))
		copy(tokens, c.Tokens)
		clearings[id] = &ClearingState{
			ID:        c.ID,
			Warriors:  warriors,
			Buildings: buildings,
			Tokens:    tokens,
		}
	}

	columns := make(map[DecreeColumn][]DecreeCard, len(gs.Factions.Eyrie.Decree.Columns))
	for col, cards := range gs.Factions.Eyrie.Decree.Columns {
		cardsCopy := make([]DecreeCard, len(cards))
		copy(cardsCopy, cards)
		columns[col] = cardsCopy
	}
	var resolved []DecreeResolution
	if gs.Factions.Eyrie.Decree.Resolved != nil {
		resolved = make([]DecreeResolution, len(gs.Factions.Eyrie.Decree.Resolved))
		copy(resolved, gs.Factions.Eyrie.Decree.Resolved)
	}

	victory := make(map[Faction]int, len(gs.VictoryTrack))
	for f, vp := range gs.VictoryTrack {
		victory[f] = vp
	}

	factions := gs.Factions
	factions.Eyrie.Decree = DecreeState{Columns: columns, Resolved: resolved}

	return &GameState{
		Board:        BoardState{Clearings: clearings},
		Factions:     factions,
		VictoryTrack: victory,
		Turn:         gs.Turn,
	}
}

// clearing returns the state of a clearing that exists on the board.
func (gs *GameState) clearing(b *Board, action ActionType, id string) (*ClearingState, Clearing, error) {
	def, ok := b.Clearing(id)
	if !ok {
		return nil, Clearing{}, invalid(action, "clearing %s does not exist on this board", id)
	}
	c, ok := gs.Board.Clearings[id]
	if !ok {
		return nil, Clearing{}, invalid(action, "clearing state missing for %s", id)
	}
	return c, def, nil
}

// WarriorsInSupply returns a faction's supply counter.
func (gs *GameState) WarriorsInSupply(f Faction) int {
	switch f {
	case Marquise:
		return gs.Factions.Marquise.WarriorsInSupply
	case Eyrie:
		return gs.Factions.Eyrie.WarriorsInSupply
	case WoodlandAlliance:
		return gs.Factions.WoodlandAlliance.WarriorsInSupply
	}
	return 0
}

// WarriorsOnBoard counts a faction's warriors across all clearings.
func (gs *GameState) WarriorsOnBoard(f Faction) int {
	total := 0
	for _, c := range gs.Board.Clearings {
		total += c.Warriors[f]
	}
	return total
}

// addVictoryPoints moves a faction along the victory track, clamped to
// [0, MaxVictoryPoints]. It returns the points actually gained or lost.
func (gs *GameState) addVictoryPoints(f Faction, delta int) int {
	before := gs.VictoryTrack[f]
	after := before + delta
	if after > MaxVictoryPoints {
		after = MaxVictoryPoints
	}
	if after < 0 {
		after = 0
	}
	gs.VictoryTrack[f] = after
	return after - before
}

// orderedClearings yields clearing states in board order.
func (gs *GameState) orderedClearings(b *Board) []*ClearingState {
	out := make([]*ClearingState, 0, len(b.clearings))
	for _, def := range b.clearings {
		if c, ok := gs.Board.Clearings[def.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}
