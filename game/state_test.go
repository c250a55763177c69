package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRules(faces ...int) *Rules {
	return NewStandardRules(WoodlandBoard(), NewFixedDice(faces...))
}

func dominion(t *testing.T, faces ...int) (*Rules, *GameState) {
	t.Helper()
	r := newTestRules(faces...)
	return r, BuildScenario(r.Board, 0)
}

func requireConservation(t *testing.T, gs *GameState) {
	t.Helper()
	for _, f := range Factions {
		require.Equal(t, TotalWarriors(f), gs.WarriorsInSupply(f)+gs.WarriorsOnBoard(f), "%s warriors should be conserved", f)
	}
	wood := 0
	for _, c := range gs.Board.Clearings {
		for _, tk := range c.Tokens {
			if tk.Faction == Marquise && tk.Type == Wood {
				wood++
			}
		}
	}
	require.Equal(t, MarquiseTotalWood, gs.Factions.Marquise.WoodInSupply+wood, "wood should be conserved")
}

func TestNewGameState(t *testing.T) {
	b := WoodlandBoard()
	gs := NewGameState(b)

	require.Len(t, gs.Board.Clearings, 12)
	require.Equal(t, MarquiseTotalWarriors, gs.Factions.Marquise.WarriorsInSupply)
	require.Equal(t, MarquiseTotalWood, gs.Factions.Marquise.WoodInSupply)
	require.Equal(t, EyrieTotalWarriors, gs.Factions.Eyrie.WarriorsInSupply)
	require.Equal(t, WoodlandAllianceTotalWarriors, gs.Factions.WoodlandAlliance.WarriorsInSupply)
	require.Equal(t, map[Faction]int{Marquise: 0, Eyrie: 0, WoodlandAlliance: 0}, gs.VictoryTrack)
	require.Equal(t, TurnState{CurrentFaction: Marquise, Phase: Birdsong, RoundNumber: 1}, gs.Turn)
	for _, col := range DecreeColumns {
		require.Empty(t, gs.Factions.Eyrie.Decree.Columns[col])
	}
	requireConservation(t, gs)
}

func TestCopy(t *testing.T) {
	_, gs := dominion(t)
	snapshot := gs.Copy()
	require.Equal(t, gs, snapshot, "Copy should be equal to the original")

	cp := gs.Copy()
	cp.Board.Clearings["c1"].Warriors[Marquise] = 99
	cp.Board.Clearings["c1"].Buildings[0].Type = Roost
	cp.Board.Clearings["c7"].Tokens = append(cp.Board.Clearings["c7"].Tokens, TokenInstance{ID: "x"})
	cp.Factions.Eyrie.Decree.Columns[DecreeMove][0].Suit = Fox
	cp.Factions.Eyrie.Decree.Resolved = append(cp.Factions.Eyrie.Decree.Resolved, DecreeResolution{Column: DecreeMove})
	cp.VictoryTrack[Eyrie] = 0
	cp.Turn.Phase = Evening

	require.Equal(t, snapshot, gs, "mutating a copy should not touch the original")
}

func TestRecompute(t *testing.T) {
	t.Run("derives supplies from the board", func(t *testing.T) {
		_, gs := dominion(t)
		stale := gs.Copy()
		stale.Factions.Marquise.WarriorsInSupply = 99
		stale.Factions.Marquise.WoodInSupply = 0
		stale.Factions.Eyrie.RoostsOnMap = 0
		stale.Factions.WoodlandAlliance.Bases = Bases{Fox: true}

		require.Equal(t, gs, Recompute(stale))
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, sc := range Scenarios() {
			once := Recompute(BuildScenario(WoodlandBoard(), sc.Index))
			require.Equal(t, once, Recompute(once), sc.Title)
		}
	})

	t.Run("does not modify its input", func(t *testing.T) {
		_, gs := dominion(t)
		gs.Factions.Marquise.WarriorsInSupply = 1
		_ = Recompute(gs)
		require.Equal(t, 1, gs.Factions.Marquise.WarriorsInSupply)
	})

	t.Run("supply never goes negative", func(t *testing.T) {
		gs := NewGameState(WoodlandBoard())
		gs.Board.Clearings["c6"].Warriors[WoodlandAlliance] = WoodlandAllianceTotalWarriors + 4
		gs.Recompute()
		require.Equal(t, 0, gs.Factions.WoodlandAlliance.WarriorsInSupply)
	})
}

func TestAddVictoryPoints(t *testing.T) {
	gs := NewGameState(WoodlandBoard())

	gs.VictoryTrack[Marquise] = 29
	require.Equal(t, 1, gs.addVictoryPoints(Marquise, 5), "gain should be clamped at the top of the track")
	require.Equal(t, MaxVictoryPoints, gs.VictoryTrack[Marquise])

	gs.VictoryTrack[Eyrie] = 1
	require.Equal(t, -1, gs.addVictoryPoints(Eyrie, -3), "loss should be clamped at zero")
	require.Equal(t, 0, gs.VictoryTrack[Eyrie])
}

func TestErrors(t *testing.T) {
	r, gs := dominion(t)
	_, err := r.Move(gs, MoveRequest{Faction: Marquise, From: "c1", To: "c9", Warriors: 1})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)
	require.True(t, IsValidation(err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, MoveAction, verr.Action)
	require.Contains(t, err.Error(), "invalid move action")
}
