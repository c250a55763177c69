package game

// TrackStep is one step of a Marquise building track.
type TrackStep struct {
	CostWood      int
	VictoryPoints int
}

// MarquiseBuildingTracks lists the six steps of each Marquise building.
var MarquiseBuildingTracks = map[BuildingType][]TrackStep{
	Sawmill: {
		{CostWood: 0, VictoryPoints: 1},
		{CostWood: 1, VictoryPoints: 2},
		{CostWood: 2, VictoryPoints: 2},
		{CostWood: 3, VictoryPoints: 3},
		{CostWood: 3, VictoryPoints: 4},
		{CostWood: 4, VictoryPoints: 5},
	},
	Workshop: {
		{CostWood: 0, VictoryPoints: 1},
		{CostWood: 1, VictoryPoints: 2},
		{CostWood: 2, VictoryPoints: 2},
		{CostWood: 3, VictoryPoints: 3},
		{CostWood: 3, VictoryPoints: 4},
		{CostWood: 4, VictoryPoints: 5},
	},
	Recruiter: {
		{CostWood: 0, VictoryPoints: 1},
		{CostWood: 1, VictoryPoints: 2},
		{CostWood: 2, VictoryPoints: 2},
		{CostWood: 3, VictoryPoints: 3},
		{CostWood: 3, VictoryPoints: 3},
		{CostWood: 4, VictoryPoints: 4},
	},
}

// RoostTrackVictoryPoints is indexed by roosts placed.
var RoostTrackVictoryPoints = []int{0, 1, 2, 3, 4, 5, 7}

// SympathyTrackVictoryPoints is indexed by the sympathy count before the
// new token is placed, so the first two tokens score nothing.
var SympathyTrackVictoryPoints = []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4}

// SympathySpreadCost is indexed by sympathy tokens already on the track.
var SympathySpreadCost = []int{1, 1, 2, 2, 2, 3, 3, 3, 4, 4}

// MartialLawWarriors is the enemy warrior count that raises the spread cost.
const MartialLawWarriors = 3

// tableAt reads a table with the index clamped into range.
func tableAt(table []int, i int) int {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

// Rules binds the executors to a board definition and a dice roller.
type Rules struct {
	Board *Board
	Dice  Dice
}

func NewStandardRules(board *Board, dice Dice) *Rules {
	return &Rules{
		Board: board,
		Dice:  dice,
	}
}
